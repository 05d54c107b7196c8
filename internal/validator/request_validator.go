package validator

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// labelタグがあればエラーメッセージのフィールド名に使う
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
}

// FirstMissingFieldは最初の検証エラーのフィールド名（label優先）を返す。
// エラーが無ければ空文字。
func FirstMissingField(s interface{}) string {
	err := validate.Struct(s)
	if err == nil {
		return ""
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return "input"
	}
	return ve[0].Field()
}

// FirstRequiredMessageは既存API互換の「<Field> is Required」を返す。
func FirstRequiredMessage(s interface{}) string {
	field := FirstMissingField(s)
	if field == "" {
		return ""
	}
	return fmt.Sprintf("%s is Required", field)
}
