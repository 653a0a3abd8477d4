package pace

// ErrorKind identifies why an input was rejected
type ErrorKind int

const (
	KindBothFieldsFilled ErrorKind = iota + 1
	KindNoFieldFilled
	KindInvalidFormat
	KindInvalidSeconds
	KindZeroPace
	KindZeroSpeed
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case KindBothFieldsFilled:
		return "BothFieldsFilled"
	case KindNoFieldFilled:
		return "NoFieldFilled"
	case KindInvalidFormat:
		return "InvalidFormat"
	case KindInvalidSeconds:
		return "InvalidSeconds"
	case KindZeroPace:
		return "ZeroPace"
	case KindZeroSpeed:
		return "ZeroSpeed"
	default:
		return "Unknown"
	}
}

// ErrorTitle is the heading a UI shows above a validation message
const ErrorTitle = "输入错误"

// ValidationError is returned for any input the engine cannot turn into a pace.
// Message is user-facing text.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError of the same kind, so
// errors.Is(err, ErrInvalidFormat) holds for both pace and speed format errors.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel validation errors
var (
	ErrBothFieldsFilled = &ValidationError{Kind: KindBothFieldsFilled, Message: "请勿同时输入配速和时速"}
	ErrNoFieldFilled    = &ValidationError{Kind: KindNoFieldFilled, Message: "请输入配速或时速之一"}
	ErrInvalidFormat    = &ValidationError{Kind: KindInvalidFormat, Message: "输入格式错误"}
	ErrInvalidSeconds   = &ValidationError{Kind: KindInvalidSeconds, Message: "秒数应小于60"}
	ErrZeroPace         = &ValidationError{Kind: KindZeroPace, Message: "配速不能为0"}
	ErrZeroSpeed        = &ValidationError{Kind: KindZeroSpeed, Message: "时速不能为0"}

	errInvalidPaceFormat = &ValidationError{
		Kind:    KindInvalidFormat,
		Message: "配速应为3到4位数字，例如500表示5分0秒，445表示4分45秒，1230表示12分30秒",
	}
	errInvalidSpeedFormat = &ValidationError{
		Kind:    KindInvalidFormat,
		Message: "时速应为大于0的数字，例如12.3",
	}
)

// KindOf returns the kind of a validation error, or 0 if err is not one
func KindOf(err error) ErrorKind {
	if ve, ok := err.(*ValidationError); ok {
		return ve.Kind
	}
	return 0
}
