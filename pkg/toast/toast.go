package toast

import "github.com/petitemaison/epouvante/pkg/server"

// EventName is the request event name used for toasts.
const EventName = "toast"

// Level represents the toast notification level.
type Level string

const (
	LevelDefault Level = "default"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Toast is one notification.
type Toast struct {
	Title       string
	Description string
	Level       Level
}

// Notify records t on the request. An empty Level means LevelDefault.
func Notify(ctx server.Ctx, t Toast) {
	if t.Level == "" {
		t.Level = LevelDefault
	}
	ctx.Emit(EventName, t)
}

// Success shows a success toast.
//
//	toast.Success(ctx, "Bienvenue dans l'épouvante !", "Vous recevrez bientôt nos dernières actualités.")
func Success(ctx server.Ctx, title, description string) {
	Notify(ctx, Toast{Title: title, Description: description, Level: LevelSuccess})
}

// Error shows an error toast.
//
//	toast.Error(ctx, "Adresse invalide", "Vérifiez votre adresse email.")
func Error(ctx server.Ctx, title, description string) {
	Notify(ctx, Toast{Title: title, Description: description, Level: LevelError})
}

// Pending returns the toasts recorded on ctx so far, in order.
// Events with the toast name but another payload type are skipped.
func Pending(ctx server.Ctx) []Toast {
	var out []Toast
	for _, e := range ctx.Events() {
		if e.Name != EventName {
			continue
		}
		if t, ok := e.Data.(Toast); ok {
			out = append(out, t)
		}
	}
	return out
}
