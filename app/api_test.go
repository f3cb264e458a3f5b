package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	"github.com/carlmjohnson/requests"
	"github.com/chrisnov-it/feathershare/config"
	"github.com/chrisnov-it/feathershare/lib"
	"github.com/chrisnov-it/feathershare/lib/models"
	"github.com/chrisnov-it/feathershare/senders"
	"github.com/chrisnov-it/feathershare/settings"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*httptest.Server, *lib.Service, *gorm.DB) {
	t.Helper()
	t.Setenv("ADMIN_CREDS", "admin:secret")

	log := zap.NewNop()
	cfg := config.NewConfig(nil, log)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Subscriber{}, &models.FormToken{}, &models.Option{}))

	store := settings.NewStore(nil, log, db)
	svc := lib.NewService(nil, cfg, log, db, store, senders.Registry{})

	srv := httptest.NewServer(router(cfg, log, svc))
	t.Cleanup(srv.Close)
	return srv, svc, db
}

func fetchFormToken(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	var body string
	err := requests.URL(srv.URL + "/widgets/subscription-form").
		ToString(&body).
		Fetch(context.Background())
	require.NoError(t, err)

	doc, err := htmlquery.Parse(strings.NewReader(body))
	require.NoError(t, err)
	input := htmlquery.FindOne(doc, "//input[@name='token']")
	require.NotNil(t, input)
	return htmlquery.SelectAttr(input, "value")
}

func postSubscribe(t *testing.T, srv *httptest.Server, token, email string) (int, submitResponse) {
	t.Helper()
	resp, err := http.PostForm(srv.URL+"/subscribe", url.Values{
		"token": {token},
		"email": {email},
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	out := submitResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestSubscribeEndToEnd(t *testing.T) {
	srv, _, db := newTestServer(t)
	token := fetchFormToken(t, srv)

	var out submitResponse
	err := requests.URL(srv.URL + "/subscribe").
		BodyForm(url.Values{"token": {token}, "email": {"  Reader@Example.COM "}}).
		ToJSON(&out).
		Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, msgSubscribed, out.Message)

	sub := models.Subscriber{}
	require.NoError(t, db.First(&sub).Error)
	assert.Equal(t, "reader@example.com", sub.Email)
	assert.Equal(t, models.StatusActive, sub.Status)
}

func TestSubscribeDuplicateGetsIdenticalResponse(t *testing.T) {
	srv, _, db := newTestServer(t)

	status, first := postSubscribe(t, srv, fetchFormToken(t, srv), "reader@example.com")
	require.Equal(t, http.StatusOK, status)

	status, second := postSubscribe(t, srv, fetchFormToken(t, srv), "READER@example.com")
	require.Equal(t, http.StatusOK, status)

	// Anti-enumeration: the caller cannot tell new from already-subscribed.
	assert.Equal(t, first, second)

	count := int64(0)
	require.NoError(t, db.Model(&models.Subscriber{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubscribeRejectsForgedToken(t *testing.T) {
	srv, _, db := newTestServer(t)

	status, out := postSubscribe(t, srv, "forged", "reader@example.com")
	assert.Equal(t, http.StatusForbidden, status)
	assert.False(t, out.OK)
	assert.Equal(t, msgSecurityCheck, out.Message)

	count := int64(0)
	require.NoError(t, db.Model(&models.Subscriber{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubscribeRejectsTokenReplay(t *testing.T) {
	srv, _, _ := newTestServer(t)
	token := fetchFormToken(t, srv)

	status, _ := postSubscribe(t, srv, token, "reader@example.com")
	require.Equal(t, http.StatusOK, status)

	status, out := postSubscribe(t, srv, token, "other@example.com")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, msgSecurityCheck, out.Message)
}

func TestSubscribeValidationFailures(t *testing.T) {
	srv, _, _ := newTestServer(t)

	for _, email := range []string{"", "foo", "foo@bar", "@bar.com"} {
		status, out := postSubscribe(t, srv, fetchFormToken(t, srv), email)
		assert.Equal(t, http.StatusBadRequest, status, email)
		assert.False(t, out.OK, email)
		assert.Equal(t, msgInvalidEmail, out.Message, email)
	}
}

func TestSubscribeRejectsWrongMethod(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/subscribe")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestShareButtonsWidget(t *testing.T) {
	srv, _, _ := newTestServer(t)

	var body string
	err := requests.URL(srv.URL+"/widgets/share-buttons").
		Param("url", "https://blog.example.com/post").
		Param("title", "Hello World").
		ToString(&body).
		Fetch(context.Background())
	require.NoError(t, err)

	doc, err := htmlquery.Parse(strings.NewReader(body))
	require.NoError(t, err)
	// Default settings enable facebook, twitter and linkedin.
	assert.Len(t, htmlquery.Find(doc, "//a"), 3)

	resp, err := http.Get(srv.URL + "/widgets/share-buttons")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func seedSubscribers(t *testing.T, srv *httptest.Server, emails ...string) {
	t.Helper()
	for _, email := range emails {
		status, _ := postSubscribe(t, srv, fetchFormToken(t, srv), email)
		require.Equal(t, http.StatusOK, status)
	}
}

func TestExportRequiresAdminAuth(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/admin/subscribers/export")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestExportCSVDownload(t *testing.T) {
	srv, _, _ := newTestServer(t)
	seedSubscribers(t, srv, "first@example.com", "second@example.com", "third@example.com")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/admin/subscribers/export", nil)
	require.NoError(t, err)
	req.SetBasicAuth("admin", "secret")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="feathershare-subscribers-`)

	body := new(strings.Builder)
	_, err = io.Copy(body, resp.Body)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(body.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Email", lines[0])
	assert.Equal(t, "third@example.com", lines[1])
	assert.Equal(t, "second@example.com", lines[2])
	assert.Equal(t, "first@example.com", lines[3])
}

func TestListSubscribersJSON(t *testing.T) {
	srv, _, _ := newTestServer(t)
	seedSubscribers(t, srv, "first@example.com", "second@example.com")

	var views []SubscriberView
	err := requests.URL(srv.URL + "/admin/subscribers").
		BasicAuth("admin", "secret").
		ToJSON(&views).
		Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, views, 2)
	assert.Equal(t, "second@example.com", views[0].Email)
	assert.Equal(t, "first@example.com", views[1].Email)
	assert.Equal(t, models.StatusActive, views[0].Status)
	assert.NotEmpty(t, views[0].SubscribedAt)
}
