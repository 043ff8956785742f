package employeeerrors

import (
	"net/http"

	"employee-manager/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"The requested employee could not be found",
		http.StatusNotFound,
	)
	ErrUpdateFailed = apperror.New(
		apperror.CodeUpdateFailed,
		"Failed to update employee",
		http.StatusInternalServerError,
	)
)
