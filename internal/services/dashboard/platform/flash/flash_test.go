package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	writeRR := httptest.NewRecorder()

	Write(writeRR, req, Success("activity.create", "Atlas"))
	setCookieHeader := writeRR.Header().Get("Set-Cookie")
	if setCookieHeader == "" {
		t.Fatal("expected Set-Cookie header")
	}
	cookie, err := http.ParseSetCookie(setCookieHeader)
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	req.AddCookie(cookie)

	readRR := httptest.NewRecorder()
	notice, ok := ReadAndClear(readRR, req)
	if !ok {
		t.Fatal("ReadAndClear() ok = false, want true")
	}
	if notice.Kind != KindSuccess || notice.Key != "activity.create" || notice.Arg != "Atlas" {
		t.Fatalf("notice = %+v", notice)
	}
	if readRR.Header().Get("Set-Cookie") == "" {
		t.Fatal("expected clear Set-Cookie header")
	}
}

func TestReadAndClearInvalidCookieValueStillClears(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64"})
	rr := httptest.NewRecorder()

	if _, ok := ReadAndClear(rr, req); ok {
		t.Fatal("ReadAndClear() ok = true, want false")
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatal("expected clear Set-Cookie header")
	}
}

func TestWriteIgnoresInvalidNotice(t *testing.T) {
	t.Parallel()

	for _, notice := range []Notice{
		{Kind: KindSuccess, Key: "  "},
		{Kind: "shout", Key: "activity.create"},
	} {
		rr := httptest.NewRecorder()
		Write(rr, httptest.NewRequest(http.MethodGet, "/", nil), notice)
		if got := rr.Header().Get("Set-Cookie"); got != "" {
			t.Fatalf("Write(%+v) Set-Cookie = %q, want empty", notice, got)
		}
	}
}

func TestWriteMarksCookieSecureBehindTLSProxy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	Write(rr, req, Success("activity.delete", "Go"))
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if !cookie.Secure {
		t.Fatal("cookie.Secure = false, want true")
	}
}
