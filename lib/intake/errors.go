package intake

import (
	"github.com/pkg/errors"
)

// ErrInvalidTransition действие недоступно на текущем этапе сессии
var ErrInvalidTransition = errors.New("action is not available at this stage")

// ValidationError ошибка данных анкеты, показывается пользователю как есть
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// GenerationError ошибка удаленного сервиса генерации вопросов
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "Failed to generate questions: " + e.Err.Error()
}

func (e *GenerationError) Cause() error  { return e.Err }
func (e *GenerationError) Unwrap() error { return e.Err }

// DeliveryError ошибка отправки письма
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return "Failed to send email: " + e.Err.Error()
}

func (e *DeliveryError) Cause() error  { return e.Err }
func (e *DeliveryError) Unwrap() error { return e.Err }

// StorageError ошибка хранилища кандидатов, прерывает только текущее действие
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "Failed to store candidate data: " + e.Err.Error()
}

func (e *StorageError) Cause() error  { return e.Err }
func (e *StorageError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsGeneration(err error) bool {
	var target *GenerationError
	return errors.As(err, &target)
}

func IsDelivery(err error) bool {
	var target *DeliveryError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}
