package rp

// SupportedGPUTypes is the ordered default preference list used when a
// submission does not name its own. Order reflects availability and price,
// cheapest-adequate first.
var SupportedGPUTypes = []string{
	"NVIDIA A40",
	"NVIDIA RTX A6000",
	"NVIDIA L40S",
	"NVIDIA A100 80GB PCIe",
	"NVIDIA H100 PCIe",
}

// RetryGPUPreferences builds the preference list for a GPU-shortage retry.
// If the original GPU type is still supported it keeps its position at the
// head; otherwise it is prepended ahead of the full supported list so the
// provider gets one more chance at the original hardware before falling
// back.
func RetryGPUPreferences(originalGPUType string, supported []string) []string {
	if originalGPUType == "" {
		return append([]string{}, supported...)
	}
	for i, t := range supported {
		if t == originalGPUType {
			prefs := make([]string, 0, len(supported))
			prefs = append(prefs, t)
			prefs = append(prefs, supported[:i]...)
			prefs = append(prefs, supported[i+1:]...)
			return prefs
		}
	}
	return append([]string{originalGPUType}, supported...)
}
