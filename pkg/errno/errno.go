package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode             = 0
	ServiceErrCode          = 10001
	ParamErrCode            = 10002
	AuthorizationFailedCode = 10003
	UserAlreadyExistCode    = 10004
	PasswordWrongCode       = 10005
	VideoNotExistCode       = 10006
	ChannelNotExistCode     = 10007
)

type ErrNo struct {
	ErrCode int64  `json:"code"`
	ErrMsg  string `json:"message"`
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{
		ErrCode: code,
		ErrMsg:  msg,
	}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "success")
	ServiceErr             = NewErrNo(ServiceErrCode, "service is unable to handle this request")
	ParamErr               = NewErrNo(ParamErrCode, "wrong parameter")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "authorization required")
	UserAlreadyExistErr    = NewErrNo(UserAlreadyExistCode, "username already taken")
	PasswordWrongErr       = NewErrNo(PasswordWrongCode, "invalid username or password")
	VideoNotExistErr       = NewErrNo(VideoNotExistCode, "video not found")
	ChannelNotExistErr     = NewErrNo(ChannelNotExistCode, "channel not found")
)

// ConvertErr turns an arbitrary error into an ErrNo, keeping the original
// message when the error is not one of ours.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	errno := ErrNo{}
	if errors.As(err, &errno) {
		return errno
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
