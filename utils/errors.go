package utils

// PermError tells the backoff wrapper to stop retrying
type PermError string

func (e PermError) Error() string {
	return string(e)
}

func (e PermError) IsPermanent() bool {
	return true
}
