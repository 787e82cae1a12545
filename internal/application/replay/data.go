package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F int    `json:"f"`           // Frame number
	U bool   `json:"u,omitempty"` // Up held
	D bool   `json:"d,omitempty"` // Down held
	L bool   `json:"l,omitempty"` // Left held
	R bool   `json:"r,omitempty"` // Right held
	P string `json:"p,omitempty"` // Direction pressed this frame
	A int    `json:"a,omitempty"` // Attack slot pressed (1-based)
	C bool   `json:"c,omitempty"` // Confirm pressed
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Map       string       `json:"map"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
