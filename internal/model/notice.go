package model

type NoticeType string

const (
	NoticeInfo    NoticeType = "info"
	NoticeWarning NoticeType = "warning"
	NoticeUrgent  NoticeType = "urgent"
)

type Notice struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      NoticeType `json:"type"`
	Active    bool       `json:"active"`
	CreatedAt string     `json:"created_at"`
}

// ActiveNotice returns the currently broadcast notice, if any. Only one
// notice is supposed to be active at a time; if the invariant has been
// violated by concurrent writers the first one wins.
func ActiveNotice(notices []Notice) (Notice, bool) {
	for _, n := range notices {
		if n.Active {
			return n, true
		}
	}
	return Notice{}, false
}
