package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/moviedeck/internal/config"
	"github.com/sidereusnuntius/moviedeck/internal/domain"
)

// HttpClient implements Client over the backend's JSON routes. Every request
// gets a deadline from the configuration and a fresh request id, so a hung
// backend call fails like any other transport error instead of leaving the
// caller loading forever.
type HttpClient struct {
	base    *url.URL
	client  *http.Client
	timeout time.Duration
}

func New(cfg config.Configuration, client *http.Client) *HttpClient {
	if client == nil {
		client = &http.Client{}
	}
	return &HttpClient{
		base:    cfg.ApiUrl,
		client:  client,
		timeout: cfg.HttpTimeout,
	}
}

func (c *HttpClient) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, c.base.JoinPath("auth", "login"), "", creds, &result)
	if err != nil {
		var remote *Error
		if errors.As(err, &remote) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	return result, nil
}

func (c *HttpClient) Signup(ctx context.Context, form SignupForm) error {
	return c.do(ctx, http.MethodPost, c.base.JoinPath("auth", "signup"), "", form, nil)
}

func (c *HttpClient) Me(ctx context.Context, token string) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, http.MethodGet, c.base.JoinPath("auth", "me"), token, nil, &user)
	return user, err
}

func (c *HttpClient) UpdateUser(ctx context.Context, id domain.UserID, patch UserPatch) (UserPatch, error) {
	var updated UserPatch
	u := c.base.JoinPath("user", "update", string(id))
	err := c.do(ctx, http.MethodPut, u, "", patch, &updated)
	return updated, err
}

func (c *HttpClient) FetchReviews(ctx context.Context, movieID domain.MovieID) ([]domain.Review, error) {
	var body struct {
		Reviews []domain.Review `json:"reviews"`
	}
	u := c.base.JoinPath("reviews", fmt.Sprint(movieID))
	err := c.do(ctx, http.MethodGet, u, "", nil, &body)
	return body.Reviews, err
}

func (c *HttpClient) CreateReview(ctx context.Context, req CreateReviewRequest) (domain.Review, error) {
	var body struct {
		Review domain.Review `json:"review"`
	}
	err := c.do(ctx, http.MethodPost, c.base.JoinPath("reviews", "create"), "", req, &body)
	return body.Review, err
}

func (c *HttpClient) UpdateReviewText(ctx context.Context, id domain.ReviewID, newReview string) (domain.Review, error) {
	var body struct {
		Review domain.Review `json:"review"`
	}
	u := c.base.JoinPath("reviews", "update", "review", string(id))
	payload := map[string]string{"newReview": newReview}
	err := c.do(ctx, http.MethodPut, u, "", payload, &body)
	return body.Review, err
}

func (c *HttpClient) ToggleReaction(ctx context.Context, id domain.ReviewID, user domain.UserID, reaction domain.Reaction) error {
	u := c.base.JoinPath("reviews", "update", "like", string(id))
	payload := struct {
		UserID domain.UserID   `json:"userId"`
		Action domain.Reaction `json:"action"`
	}{user, reaction}
	return c.do(ctx, http.MethodPost, u, "", payload, nil)
}

func (c *HttpClient) DeleteReview(ctx context.Context, id domain.ReviewID) error {
	u := c.base.JoinPath("reviews", "delete", string(id))
	return c.do(ctx, http.MethodDelete, u, "", nil, nil)
}

func (c *HttpClient) GoogleAuthURL() *url.URL {
	return c.base.JoinPath("auth", "google")
}

// do issues one request and decodes the answer into out, when out is non nil.
// Non-2xx responses are turned into *Error carrying the backend's error body.
func (c *HttpClient) do(ctx context.Context, method string, u *url.URL, token string, payload, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	log.Debug().Str("method", method).Str("url", u.String()).Msg("issuing request")
	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return c.fail(res)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *HttpClient) fail(res *http.Response) error {
	remote := struct {
		Message string `json:"error"`
	}{}
	if err := json.NewDecoder(res.Body).Decode(&remote); err != nil || remote.Message == "" {
		remote.Message = "network error"
	}
	log.Debug().Int("status", res.StatusCode).Str("error", remote.Message).Msg("request refused")
	return &Error{
		Status:  res.StatusCode,
		Message: remote.Message,
	}
}
