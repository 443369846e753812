package domain

//region ValidationError

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

//endregion

//region InsufficientStockError

type InsufficientStockError struct {
	Msg string
}

func (e *InsufficientStockError) Error() string {
	return e.Msg
}

func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

//endregion

//region InsufficientFundsError

type InsufficientFundsError struct {
	Msg string
}

func (e *InsufficientFundsError) Error() string {
	return e.Msg
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

//endregion

//region InvalidOrderStateError

type InvalidOrderStateError struct {
	Msg string
}

func (e *InvalidOrderStateError) Error() string {
	return e.Msg
}

func (e *InvalidOrderStateError) Is(target error) bool {
	_, ok := target.(*InvalidOrderStateError)
	return ok
}

//endregion

//region ListingNotFoundError

type ListingNotFoundError struct {
	Msg string
}

func (e *ListingNotFoundError) Error() string {
	return e.Msg
}

func (e *ListingNotFoundError) Is(target error) bool {
	_, ok := target.(*ListingNotFoundError)
	return ok
}

//endregion

//region OrderNotFoundError

type OrderNotFoundError struct {
	Msg string
}

func (e *OrderNotFoundError) Error() string {
	return e.Msg
}

func (e *OrderNotFoundError) Is(target error) bool {
	_, ok := target.(*OrderNotFoundError)
	return ok
}

//endregion

//region CategoryNotFoundError

type CategoryNotFoundError struct {
	Msg string
}

func (e *CategoryNotFoundError) Error() string {
	return e.Msg
}

func (e *CategoryNotFoundError) Is(target error) bool {
	_, ok := target.(*CategoryNotFoundError)
	return ok
}

//endregion
