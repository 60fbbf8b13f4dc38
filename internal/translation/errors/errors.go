package errors

import "errors"

var (
	ErrorNotImplemented      = errors.New("not implemented")
	ErrorUnsupportedLanguage = errors.New("unsupported language")
)
