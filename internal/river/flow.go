package river

import (
	"time"

	"github.com/riverline/riverline/internal/geom"
)

// FlowNode is one event occurrence on a participant's path.
type FlowNode struct {
	EventID string     `json:"event_id"`
	Time    time.Time  `json:"time"`
	Pos     geom.Point `json:"pos"`
}

// Path is one participant's stream: their events in time order, a stable
// color, and the lane origin the stream starts from.
type Path struct {
	ParticipantID string         `json:"participant_id"`
	Color         geom.ColorRGBA `json:"color"`
	Origin        geom.Point     `json:"origin"`
	Nodes         []FlowNode     `json:"nodes"`
	Line          geom.Polyline  `json:"line"`
}

// Intersection marks a shared life moment: an event whose combined
// owner-plus-participants set has at least two members.
type Intersection struct {
	Pos            geom.Point `json:"pos"`
	EventID        string     `json:"event_id"`
	ParticipantIDs []string   `json:"participant_ids"`
}
