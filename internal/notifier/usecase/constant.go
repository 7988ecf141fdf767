package usecase

// Push payload texts. The title is fixed; the body carries the todo title.
const (
	PushSound    = "default"
	PushTitle    = "Time's up! ⏰"
	PushBodyTmpl = "%q is past its due date."
)
