package controller

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{echo_errors.ErrNotAuthorized, http.StatusForbidden},
		{fmt.Errorf("approve: %w", echo_errors.ErrNotAuthorized), http.StatusForbidden},
		{echo_errors.ErrUnauthorized, http.StatusUnauthorized},
		{echo_errors.ErrInvalidCredentials, http.StatusUnauthorized},
		{echo_errors.ErrInvalidState, http.StatusBadRequest},
		{echo_errors.ErrDuplicateBinding, http.StatusBadRequest},
		{echo_errors.ErrExpired, http.StatusBadRequest},
		{echo_errors.ErrAlreadyRated, http.StatusBadRequest},
		{fmt.Errorf("%w: area must be positive", echo_errors.ErrInvalidHouseData), http.StatusBadRequest},
		{echo_errors.ErrMerchantOrderNotFound, http.StatusNotFound},
		{echo_errors.ErrHouseConflict, http.StatusConflict},
		{echo_errors.ErrPaymentInProgress, http.StatusConflict},
		{echo_errors.ErrDatabaseOperation, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}
