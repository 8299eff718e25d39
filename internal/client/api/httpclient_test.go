package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what the server saw for later assertions.
type recordedRequest struct {
	Method      string
	Path        string
	Query       string
	ContentType string
	Body        string
}

func newRecordingServer(t *testing.T, handler http.HandlerFunc) (*HTTPClient, *[]recordedRequest) {
	t.Helper()

	var seen []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen = append(seen, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return NewHTTPClient(srv.URL, 5*time.Second), &seen
}

func TestLogin_Success(t *testing.T) {
	client, seen := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	err := client.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	got := (*seen)[0]
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/login", got.Path)
	assert.Equal(t, "application/json", got.ContentType)
	assert.JSONEq(t, `{"email":"a@b.com","password":"secret"}`, got.Body)
}

func TestLogin_ServerErrorCarriesStatusAndMessage(t *testing.T) {
	client, _ := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"invalid email or password"}`)
	})

	err := client.Login(context.Background(), "a@b.com", "wrong")
	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, http.StatusUnauthorized, srvErr.Status)
	assert.Equal(t, "invalid email or password", srvErr.Message)
	assert.Equal(t, "HTTP 401: invalid email or password", srvErr.Error())
}

func TestLogin_TransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewHTTPClient(url, time.Second)
	err := client.Login(context.Background(), "a@b.com", "secret")

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestGetProfile_DecodesWirePayload(t *testing.T) {
	client, seen := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"phone":"5551234567","carrier":"att","method":"text","timezone":"-5","time":"09:30"}`)
	})

	p, err := client.GetProfile(context.Background(), "a@b.com")
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", p.Email)
	assert.Equal(t, "5551234567", p.Phone)
	assert.Equal(t, "att", p.Carrier)
	assert.Equal(t, "text", p.Method)
	assert.Equal(t, "-5", p.Timezone)
	assert.Equal(t, "09:30", p.Time)

	require.Len(t, *seen, 1)
	assert.Equal(t, "email=a%40b.com", (*seen)[0].Query)
}

func TestGetProfile_MalformedBodyIsDecodeError(t *testing.T) {
	client, _ := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	})

	_, err := client.GetProfile(context.Background(), "a@b.com")
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
}

func TestUpdateProfile_SendsFullWireShape(t *testing.T) {
	client, seen := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	err := client.UpdateProfile(context.Background(), &Profile{
		Email:    "a@b.com",
		Phone:    "5551234567",
		Carrier:  "verizon",
		Method:   "text",
		Timezone: "-8",
		Time:     "07:45",
	})
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	assert.JSONEq(t,
		`{"email":"a@b.com","phone":"5551234567","carrier":"verizon","method":"text","timezone":"-8","time":"07:45"}`,
		(*seen)[0].Body)
}

func TestDeleteAccount_FallbackOrderIsDeterministic(t *testing.T) {
	// Only variant 3 (POST /delete_account) succeeds; variants 1 and 2 must
	// have been attempted first, in that order.
	client, seen := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/delete_account" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.DeleteAccount(context.Background(), "a@b.com")
	require.NoError(t, err)

	require.Len(t, *seen, 3)
	assert.Equal(t, http.MethodPost, (*seen)[0].Method)
	assert.Equal(t, "/delete_profile", (*seen)[0].Path)
	assert.Equal(t, "application/json", (*seen)[0].ContentType)

	assert.Equal(t, http.MethodDelete, (*seen)[1].Method)
	assert.Equal(t, "/delete_profile", (*seen)[1].Path)
	assert.Equal(t, "email=a%40b.com", (*seen)[1].Query)
	assert.Empty(t, (*seen)[1].Body)

	assert.Equal(t, http.MethodPost, (*seen)[2].Method)
	assert.Equal(t, "/delete_account", (*seen)[2].Path)
}

func TestDeleteAccount_LastVariantUsesFormEncoding(t *testing.T) {
	client, seen := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		fmt.Fprint(w, "nope")
	})

	err := client.DeleteAccount(context.Background(), "a@b.com")
	require.Error(t, err)

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, "HTTP 418: nope", srvErr.Error())

	require.Len(t, *seen, 4)
	last := (*seen)[3]
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/delete_profile", last.Path)
	assert.Equal(t, "application/x-www-form-urlencoded", last.ContentType)
	assert.Equal(t, "email=a%40b.com", last.Body)
}

func TestGetEntry(t *testing.T) {
	client, seen := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"theme":"Kindness","entry":"Do something kind today."}`)
	})

	e, err := client.GetEntry(context.Background(), 6, 24)
	require.NoError(t, err)
	assert.Equal(t, "Kindness", e.Theme)
	assert.Equal(t, "Do something kind today.", e.Entry)

	require.Len(t, *seen, 1)
	assert.Equal(t, "day=24&month=6", (*seen)[0].Query)
}

func TestRegisterDevice(t *testing.T) {
	client, seen := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	err := client.RegisterDevice(context.Background(), "a@b.com", "deadbeef")
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	assert.Equal(t, "/register_device", (*seen)[0].Path)
	assert.JSONEq(t, `{"email":"a@b.com","device_token":"deadbeef"}`, (*seen)[0].Body)
}

func TestSend_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	client, _ := newRecordingServer(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- client.Login(ctx, "a@b.com", "secret")
	}()

	<-started
	cancel()

	select {
	case err := <-done:
		var netErr *NetworkError
		require.ErrorAs(t, err, &netErr)
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("request did not unblock after cancellation")
	}
}

func TestServerError_PlainTextBody(t *testing.T) {
	b, err := json.Marshal(map[string]string{"error": "boom"})
	require.NoError(t, err)

	withMessage := serverError(500, b)
	assert.Equal(t, "HTTP 500: boom", withMessage.Error())

	plain := serverError(500, []byte("internal blowup"))
	assert.Equal(t, "HTTP 500: internal blowup", plain.Error())
}
