package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteThenReadAndClear(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), NoticeSuccess("flash.saved"))

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("len(cookies) = %d, want 1", len(cookies))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	clearRec := httptest.NewRecorder()
	notice, ok := ReadAndClear(clearRec, req)
	if !ok {
		t.Fatal("ReadAndClear() ok = false")
	}
	if notice.Kind != KindSuccess || notice.Key != "flash.saved" {
		t.Fatalf("notice = %+v", notice)
	}

	cleared := clearRec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Fatalf("clear cookie = %+v", cleared)
	}
}

func TestWriteRejectsEmptyKey(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), Notice{Kind: KindInfo, Key: "   "})
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("len(cookies) = %d, want 0", len(cookies))
	}
}

func TestWriteRejectsUnknownKind(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), Notice{Kind: "loud", Key: "flash.saved"})
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("len(cookies) = %d, want 0", len(cookies))
	}
}

func TestReadAndClearGarbageCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "%%%not-base64%%%"})
	if _, ok := ReadAndClear(httptest.NewRecorder(), req); ok {
		t.Fatal("ReadAndClear() ok = true, want false")
	}
}

func TestReadAndClearMissingCookie(t *testing.T) {
	if _, ok := ReadAndClear(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("ReadAndClear() ok = true, want false")
	}
}
