package domain

type NoHistoryError struct{}

func (e NoHistoryError) Error() string {
	return "no launch history recorded yet"
}

func IsNoHistoryError(err error) bool {
	_, ok := err.(NoHistoryError)
	return ok
}
