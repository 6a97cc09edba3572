package utils

import (
	"clinicorp-proxy-service/internal/pkg/constvars"
	"clinicorp-proxy-service/internal/pkg/dto/requests"
	"clinicorp-proxy-service/internal/pkg/exceptions"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// ParseCancelAppointmentRequest decodes the inbound body. Malformed JSON is a
// 422 and an oversized body a 413; field rules are checked by the usecase.
func ParseCancelAppointmentRequest(r *http.Request) (*requests.CancelAppointment, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, exceptions.ErrReadBody(err)
		}
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	request := new(requests.CancelAppointment)
	if err := json.Unmarshal(body, request); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	request.ProxySecret = r.Header.Get(constvars.HeaderXProxySecret)
	return request, nil
}
