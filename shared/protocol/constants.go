package protocol

const (
	ScreenW = 640
	ScreenH = 520

	// Submission limits, enforced server-side and mirrored by the client UI
	MaxNameLen = 24

	// Board entries returned when the caller does not ask for more
	DefaultBoardLimit = 10
)
