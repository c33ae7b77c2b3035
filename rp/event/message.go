package event

import (
	"encoding/json"
	"fmt"
)

// Message wraps an Event for transport. It marshals to the stream frame
// shape {"type": <type>, "data": <payload>}.
type Message struct {
	Event Event
}

type envelope struct {
	Type Type            `json:"type"`
	Data json.RawMessage `json:"data"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(m.Event)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Type: m.Event.EventType(), Data: data})
}

func (m *Message) UnmarshalJSON(b []byte) error {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	ev, err := ParseEvent(env.Type, env.Data)
	if err != nil {
		return err
	}
	m.Event = ev
	return nil
}

// ParseEvent decodes an event payload by type.
func ParseEvent(t Type, data json.RawMessage) (Event, error) {
	var ev Event
	switch t {
	case TypeInitial:
		ev = &Initial{}
	case TypeStatusChanged:
		ev = &StatusChanged{}
	case TypeInitializationProgress:
		ev = &InitializationProgress{}
	case TypeStageProgress:
		ev = &StageProgress{}
	case TypeSubstageCompleted:
		ev = &SubstageCompleted{}
	case TypeSubstageSummary:
		ev = &SubstageSummary{}
	case TypePaperProgress:
		ev = &PaperProgress{}
	case TypeTreeViz:
		ev = &TreeViz{}
	case TypeStageSkipWindow:
		ev = &StageSkipWindow{}
	case TypeLog:
		ev = &Log{}
	case TypeBestNode:
		ev = &BestNode{}
	case TypeCodex:
		ev = &Codex{}
	case TypeCodeExecution:
		ev = &CodeExecution{}
	case TypeArtifactUploaded:
		ev = &ArtifactUploaded{}
	case TypeReviewCompleted:
		ev = &ReviewCompleted{}
	case TypeFigureReviews:
		ev = &FigureReviews{}
	case TypeHWStats:
		ev = &HWStats{}
	case TypeGPUShortage:
		ev = &GPUShortage{}
	case TypeGPUShortageRetry:
		ev = &GPUShortageRetry{}
	case TypePodInfoUpdated:
		ev = &PodInfoUpdated{}
	case TypePodBillingSummary:
		ev = &PodBillingSummary{}
	case TypeTerminationStatus:
		ev = &TerminationStatus{}
	case TypeHeartbeat:
		ev = &Heartbeat{}
	case TypeHWCostEstimate:
		ev = &HWCostEstimate{}
	case TypeHWCostActual:
		ev = &HWCostActual{}
	case TypeComplete:
		ev = &Complete{}
	case TypeError:
		ev = &Error{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", t)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, ev); err != nil {
			return nil, err
		}
	}

	return ev, nil
}
