package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrorMessage 把绑定校验错误转成面向用户的提示。
// 非校验类错误（如 JSON 语法错误）统一归为参数格式错误。
func BindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "参数格式错误"
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field())
	}
	return "参数不合法: " + strings.Join(fields, ", ")
}
