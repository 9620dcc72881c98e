package services

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"

	"github.com/dmitrijs2005/neoinbox/internal/common"
)

// RegisterInput is the validated shape of a sign-up request. The tags are
// shared by gin form binding in the web front and by Validate.
type RegisterInput struct {
	Name     string `form:"name" binding:"required,max=100"`
	Email    string `form:"email" binding:"required,email,max=254"`
	Password string `form:"password" binding:"required,max=72"`
}

// LoginInput is the validated shape of a login request.
type LoginInput struct {
	Email    string `form:"email" binding:"required,email,max=254"`
	Password string `form:"password" binding:"required"`
}

// Validate checks the input against its binding rules. Failures wrap
// common.ErrorValidation.
func (in RegisterInput) Validate() error {
	return validate(in)
}

// Validate checks the input against its binding rules. Failures wrap
// common.ErrorValidation.
func (in LoginInput) Validate() error {
	return validate(in)
}

func validate(obj any) error {
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}
