package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hostelhub/constants"
)

func containsFold(values []string, v string) bool {
	for _, val := range values {
		if strings.EqualFold(val, v) {
			return true
		}
	}
	return false
}

// RegisterBindingRules đăng ký các rule enum cho binding tags của gin
func RegisterBindingRules() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		return contains(constants.Months, fl.Field().String())
	})

	// handler chuẩn hóa hoa thường nên rule chấp nhận mọi kiểu viết
	v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return containsFold(constants.Days, fl.Field().String())
	})

	v.RegisterValidation("roomtype", func(fl validator.FieldLevel) bool {
		return contains(constants.RoomTypes, fl.Field().String())
	})
}
