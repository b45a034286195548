// Package toast provides feedback notifications for page handlers.
//
// A toast is fire-and-forget: the handler calls Notify (or Success and
// Error) on its server.Ctx and carries on. The notification is recorded
// as a request event and rendered by the page's toaster region in the
// same response, so there is no flash cookie and nothing outlives the
// request.
//
// # Server-Side Usage
//
//	func Subscribe(ctx server.Ctx) (render.PageData, error) {
//	    if err := subscribers.Add(ctx.StdContext(), email); err != nil {
//	        toast.Error(ctx, "Adresse invalide", "Vérifiez votre adresse email.")
//	        return page(ctx), nil
//	    }
//
//	    toast.Success(ctx, "Bienvenue dans l'épouvante !", "")
//	    return page(ctx), nil
//	}
//
// # Rendering
//
// The toaster component reads Pending(ctx) while the page renders. It must
// be built lazily (vdom.Func) or after the handler's Notify calls.
package toast
