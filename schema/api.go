package schema

const (
	MaxPageSize = 200
)

type ReqSearch struct {
	Term string `json:"term"`
}

type RespEvents struct {
	Events []LiveEvent `json:"events"`
}

type RespHistory struct {
	Domain string         `json:"domain"`
	Events []HistoryEvent `json:"events"`
}

type RespErr struct {
	Err string `json:"error"`
}

func (r RespErr) Error() string {
	return r.Err
}
