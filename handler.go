package signup

import (
	"encoding/json"
	"io"
	"net/http"
)

func SignUpHandler(c *SignUpController) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		req, err := decodeSignUpRequest(r.Body)
		if err != nil {
			encodeResponse(w, badRequest(InvalidParamError{Param: "body"}))
			return
		}

		encodeResponse(w, c.Handle(r.Context(), req))
	})
}

func encodeResponse(w http.ResponseWriter, res Response) {
	w.WriteHeader(res.StatusCode)
	_ = json.NewEncoder(w).Encode(res.Body)
}

func decodeSignUpRequest(body io.ReadCloser) (SignUpRequest, error) {
	req := SignUpRequest{}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return SignUpRequest{}, err
	}
	return req, nil
}
