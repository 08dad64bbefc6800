package http

import (
	"github.com/MKhiriev/eth2phone-gateway/internal/app"
	"github.com/MKhiriev/eth2phone-gateway/internal/httperr"
	"golang.org/x/text/language"
)

var supportedLocales = []language.Tag{
	language.Russian, // default
	language.English,
}

var localizedMessages = map[language.Tag]map[httperr.Kind]string{
	language.Russian: {
		httperr.KindCSRFTokenMismatch: app.MsgCSRFTokenMismatchRU,
		httperr.KindUnclassified:      app.MsgServerError,
	},
	language.English: {
		httperr.KindCSRFTokenMismatch: app.MsgCSRFTokenMismatchEN,
		httperr.KindUnclassified:      app.MsgServerError,
	},
}

// messageCatalog picks the user-facing message for a classified failure.
type messageCatalog struct {
	locale language.Tag
}

func newMessageCatalog(locale string) messageCatalog {
	tag, err := language.Parse(locale)
	if err != nil {
		return messageCatalog{locale: supportedLocales[0]}
	}

	_, index, _ := language.NewMatcher(supportedLocales).Match(tag)
	return messageCatalog{locale: supportedLocales[index]}
}

// message returns the text sent to the client. Bad requests expose their own
// message; every other kind is looked up in the locale table.
func (c messageCatalog) message(e *httperr.Error) string {
	if e.Kind == httperr.KindBadRequest {
		return e.Error()
	}

	if msg, ok := localizedMessages[c.locale][e.Kind]; ok {
		return msg
	}
	return app.MsgServerError
}
