package persistence

import (
	"tweetvault/internal/core"
	"tweetvault/internal/persistence/posts"

	"github.com/zhulik/pal"
)

func Provide() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide[core.DB](&DB{}),
		pal.Provide[core.PostRepository](&posts.Repository{}),
	)
}
