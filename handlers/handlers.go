// Package handlers contains one handler per endpoint. Each validates input,
// calls the store and shapes the JSON response; status codes follow the
// store's sentinel errors (400 validation, 401 auth, 403 not owner, 404
// missing).
package handlers

import (
	"socialnet/auth"
	"socialnet/store"
)

type API struct {
	Members  store.MemberStore
	Posts    store.PostStore
	Comments store.CommentStore
	Sessions *auth.Manager
}

func New(members store.MemberStore, posts store.PostStore, comments store.CommentStore, sessions *auth.Manager) *API {
	return &API{
		Members:  members,
		Posts:    posts,
		Comments: comments,
		Sessions: sessions,
	}
}
