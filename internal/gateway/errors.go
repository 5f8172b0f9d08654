package gateway

import "fmt"

// TransportError описывает сетевую ошибку или ответ API со статусом вне 2xx
type TransportError struct {
	Op         string
	StatusCode int
	// Message сообщение из тела ответа сервера, показывается пользователю как есть
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
