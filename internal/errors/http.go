package errors

import "net/http"

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Malformed codepoints and language codes arrive as path segments,
	// so they answer as missing pages rather than bad requests.
	case CodeInvalidCodepoint,
		CodeInvalidLanguage,
		CodeNotFound:
		return http.StatusNotFound

	case CodeEmptyDataset:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// HTTPStatusFor resolves the status for any error, defaulting to 500.
func HTTPStatusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return GetCode(err).HTTPStatus()
}
