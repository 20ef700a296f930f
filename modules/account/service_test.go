package account_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/springmovies/webclient/app"
	"github.com/springmovies/webclient/app/apptest"
	"github.com/springmovies/webclient/modules/account"
	"github.com/springmovies/webclient/pkg/alert"
	"github.com/springmovies/webclient/pkg/authapi"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) SignUp(ctx context.Context, creds authapi.Credentials) (authapi.User, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(authapi.User), args.Error(1)
}

func (m *mockAPI) SignIn(ctx context.Context, creds authapi.Credentials) (authapi.User, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(authapi.User), args.Error(1)
}

func (m *mockAPI) SignOut(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAPI) ChangePassword(ctx context.Context, token string, pw authapi.Passwords) error {
	return m.Called(ctx, token, pw).Error(0)
}

var testUser = authapi.User{ID: "u1", Email: "neo@matrix.io", Token: "tok-1"}

type fixture struct {
	env     *apptest.Env
	api     *mockAPI
	browser *apptest.Browser
}

func setup(t *testing.T) *fixture {
	t.Helper()

	env := apptest.New(t)
	api := &mockAPI{}
	t.Cleanup(func() { api.AssertExpectations(t) })

	r := chi.NewRouter()
	r.Use(env.Middleware)
	account.NewService(api, account.WithLogger(env.Logger)).Routes().Mount(r)

	return &fixture{env: env, api: api, browser: env.Browser(r)}
}

func (f *fixture) post(path string, form url.Values) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return f.browser.Do(r)
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	return f.browser.Do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (f *fixture) state(t *testing.T) *app.State {
	t.Helper()
	return f.browser.State(t, f.env.Middleware)
}

func (f *fixture) signIn(t *testing.T) {
	t.Helper()
	f.api.On("SignIn", mock.Anything, authapi.Credentials{Email: testUser.Email, Password: "pw"}).Return(testUser, nil).Once()
	w := f.post("/sign-in", url.Values{"email": {testUser.Email}, "password": {"pw"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
}

func headings(records []alert.Record) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Heading)
	}
	return out
}

func TestForms(t *testing.T) {
	t.Parallel()

	f := setup(t)
	for path, field := range map[string]string{
		"/sign-up": `name="password_confirmation"`,
		"/sign-in": `name="email"`,
	} {
		w := f.get(path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), field, path)
	}
}

func TestSignUp(t *testing.T) {
	t.Parallel()

	t.Run("registers and signs in", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		creds := authapi.Credentials{Email: testUser.Email, Password: "pw", PasswordConfirmation: "pw"}
		f.api.On("SignUp", mock.Anything, creds).Return(authapi.User{ID: "u1", Email: testUser.Email}, nil).Once()
		f.api.On("SignIn", mock.Anything, creds).Return(testUser, nil).Once()

		w := f.post("/sign-up", url.Values{
			"email":                 {testUser.Email},
			"password":              {"pw"},
			"password_confirmation": {"pw"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		st := f.state(t)
		require.NotNil(t, st.User())
		assert.Equal(t, "tok-1", st.User().Token)
		alerts := st.Alerts()
		require.Len(t, alerts, 1)
		assert.Equal(t, "Sign Up Success", alerts[0].Heading)
		assert.Equal(t, alert.Success, alerts[0].Variant)
	})

	t.Run("api failure shows the error", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		f.api.On("SignUp", mock.Anything, mock.Anything).
			Return(authapi.User{}, &authapi.APIError{StatusCode: http.StatusUnprocessableEntity}).Once()

		w := f.post("/sign-up", url.Values{
			"email":                 {testUser.Email},
			"password":              {"pw"},
			"password_confirmation": {"pw"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `id="sign-up-form"`)
		assert.NotContains(t, w.Body.String(), testUser.Email)

		st := f.state(t)
		assert.Nil(t, st.User())
		alerts := st.Alerts()
		require.Len(t, alerts, 1)
		assert.Equal(t, "Sign Up Failed with error: request failed with status code 422", alerts[0].Heading)
		assert.Equal(t, alert.Danger, alerts[0].Variant)
	})

	t.Run("mismatched confirmation never reaches the api", func(t *testing.T) {
		t.Parallel()
		f := setup(t)

		w := f.post("/sign-up", url.Values{
			"email":                 {testUser.Email},
			"password":              {"pw"},
			"password_confirmation": {"other"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		alerts := f.state(t).Alerts()
		require.Len(t, alerts, 1)
		assert.Contains(t, alerts[0].Heading, "password_confirmation: does not match")
	})
}

func TestSignIn(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		f.signIn(t)

		st := f.state(t)
		require.NotNil(t, st.User())
		assert.Equal(t, testUser.Email, st.User().Email)
		assert.Equal(t, []string{"Sign In Success"}, headings(st.Alerts()))
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		f.api.On("SignIn", mock.Anything, mock.Anything).
			Return(authapi.User{}, &authapi.APIError{StatusCode: http.StatusUnauthorized}).Once()

		w := f.post("/sign-in", url.Values{"email": {testUser.Email}, "password": {"bad"}})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		st := f.state(t)
		assert.Nil(t, st.User())
		assert.Equal(t, []string{"Sign In Failed with error: request failed with status code 401"}, headings(st.Alerts()))
	})

	t.Run("transport failure hides the api address", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		cause := errors.New("Post \"http://auth-internal.svc.cluster.local:1/sign-in\": dial tcp:\nlookup auth-internal.svc.cluster.local: no such host")
		f.api.On("SignIn", mock.Anything, mock.Anything).
			Return(authapi.User{}, errors.Join(authapi.ErrTransport, cause)).Once()

		w := f.post("/sign-in", url.Values{"email": {testUser.Email}, "password": {"pw"}})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, []string{"Sign In Failed with error: Network Error"}, headings(f.state(t).Alerts()))
		assert.NotContains(t, w.Body.String(), "auth-internal")
	})
}

func TestSignIn_UnreachableAPI(t *testing.T) {
	t.Parallel()

	down := httptest.NewServer(http.NotFoundHandler())
	baseURL := down.URL
	down.Close()

	cfg := authapi.DefaultConfig()
	cfg.BaseURL = baseURL
	client, err := authapi.New(cfg)
	require.NoError(t, err)

	env := apptest.New(t)
	r := chi.NewRouter()
	r.Use(env.Middleware)
	account.NewService(client, account.WithLogger(env.Logger)).Routes().Mount(r)
	b := env.Browser(r)

	req := httptest.NewRequest(http.MethodPost, "/sign-in", strings.NewReader(url.Values{
		"email":    {testUser.Email},
		"password": {"pw"},
	}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := b.Do(req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	alerts := b.State(t, env.Middleware).Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "Sign In Failed with error: Network Error", alerts[0].Heading)
	assert.NotContains(t, alerts[0].Heading, strings.TrimPrefix(baseURL, "http://"))
	assert.NotContains(t, alerts[0].Heading, "\n")
}

func TestSignOut(t *testing.T) {
	t.Parallel()

	t.Run("anonymous is sent home", func(t *testing.T) {
		t.Parallel()
		f := setup(t)

		w := f.get("/sign-out")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
		assert.Empty(t, f.state(t).Alerts())
	})

	t.Run("succeeds even when the api fails", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		f.signIn(t)
		f.api.On("SignOut", mock.Anything, "tok-1").Return(errors.New("connection refused")).Once()

		w := f.get("/sign-out")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		st := f.state(t)
		assert.Nil(t, st.User())
		assert.Equal(t, []string{"Sign In Success", "Signed Out Successfully"}, headings(st.Alerts()))
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("requires a user", func(t *testing.T) {
		t.Parallel()
		f := setup(t)

		w := f.post("/change-password", url.Values{"old": {"a"}, "new": {"b"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("uses the session token", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		f.signIn(t)
		f.api.On("ChangePassword", mock.Anything, "tok-1", authapi.Passwords{Old: "a", New: "b"}).Return(nil).Once()

		w := f.post("/change-password", url.Values{"old": {"a"}, "new": {"b"}})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, []string{"Sign In Success", "Change Password Success"}, headings(f.state(t).Alerts()))
	})

	t.Run("failure keeps the user", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		f.signIn(t)
		f.api.On("ChangePassword", mock.Anything, "tok-1", mock.Anything).
			Return(&authapi.APIError{StatusCode: http.StatusBadRequest}).Once()

		w := f.post("/change-password", url.Values{"old": {"wrong"}, "new": {"b"}})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `id="change-password-form"`)
		st := f.state(t)
		assert.NotNil(t, st.User())
		assert.Contains(t, headings(st.Alerts()), "Change Password Failed with error: request failed with status code 400")
	})

	t.Run("new password must differ", func(t *testing.T) {
		t.Parallel()
		f := setup(t)
		f.signIn(t)

		w := f.post("/change-password", url.Values{"old": {"same"}, "new": {"same"}})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		alerts := f.state(t).Alerts()
		require.Len(t, alerts, 2)
		assert.Equal(t, "Change Password Failed with error: validation failed: new: must differ from the current value", alerts[1].Heading)
	})
}
