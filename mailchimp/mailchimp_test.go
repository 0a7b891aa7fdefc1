package mailchimp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDatacenter verifies the suffix derivation
func TestDatacenter(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "abc123-us21", want: "us21"},
		{key: "a-b-us6", want: "us6"},
		{key: "nodash", want: "nodash"},
		{key: "trailing-", want: ""},
		{key: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, Datacenter(tt.key))
		})
	}
}

// TestBaseURL verifies the API root for a key
func TestBaseURL(t *testing.T) {
	assert.Equal(t, "https://us21.api.mailchimp.com/3.0", BaseURL("abc123-us21"))
}

// TestClient_CreateCampaign verifies the request shape and auth
func TestClient_CreateCampaign(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/campaigns", r.URL.Path)
		assert.Equal(t, "Bearer key-us1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "regular", body["type"])
		assert.Equal(t, map[string]any{"list_id": "list1"}, body["recipients"])
		assert.Equal(t, map[string]any{
			"subject_line": DefaultSubject,
			"from_name":    DefaultFromName,
			"reply_to":     "hello@example.com",
		}, body["settings"])

		w.Write([]byte(`{"id":"c1","status":"save"}`))
	}))
	defer server.Close()

	client := NewClient("key-us1", server.URL)
	campaign, err := client.CreateCampaign(context.Background(), CampaignRequest{
		Recipients: Recipients{ListID: "list1"},
		Settings: Settings{
			SubjectLine: DefaultSubject,
			FromName:    DefaultFromName,
			ReplyTo:     "hello@example.com",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", campaign.ID)
}

// TestClient_CreateCampaign_Rejected verifies non-200 statuses wrap
// ErrCampaignCreate
func TestClient_CreateCampaign_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"title":"Invalid Resource"}`))
	}))
	defer server.Close()

	_, err := NewClient("key-us1", server.URL).CreateCampaign(context.Background(), CampaignRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCampaignCreate))
	assert.Contains(t, err.Error(), "400")
}

// TestClient_CreateCampaign_MissingID verifies a 200 without an id is a
// failed creation
func TestClient_CreateCampaign_MissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	campaign, err := NewClient("key-us1", server.URL).CreateCampaign(context.Background(), CampaignRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCampaignCreate))
	assert.Nil(t, campaign)
}

// TestClient_SetContentAndSend verifies the follow-up calls report status
// without treating it as an error
func TestClient_SetContentAndSend(t *testing.T) {
	var gotHTML string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/campaigns/c1/content":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			gotHTML = body["html"]
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPost && r.URL.Path == "/campaigns/c1/actions/send":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient("key-us1", server.URL)

	status, err := client.SetContent(context.Background(), "c1", "<p>hi</p>")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "<p>hi</p>", gotHTML)

	status, err = client.Send(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
}

// TestClient_TransportError verifies unreachable servers surface an error
func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient("key-us1", url).CreateCampaign(context.Background(), CampaignRequest{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCampaignCreate))
}
