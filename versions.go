package tower

// Version is the version of the tower control plane. This variable is
// overridden at build time using ldflags.
var Version = "0.0.0-dev"

// PipelineProtocolVersion identifies compatibility between the control plane
// and the research pipeline image running inside pods.
//
// Backwards-incompatible changes to the webhook surface should result in a
// major version bump. New endpoints that are otherwise backwards-compatible
// should result in a minor version bump.
var PipelineProtocolVersion = "1.3"
