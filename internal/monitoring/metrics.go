package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FollowToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bondeo_follow_toggles_total",
		Help: "Follow edges toggled, labelled by resulting state.",
	}, []string{"result"})

	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bondeo_posts_created_total",
		Help: "Posts created.",
	})

	PostsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bondeo_posts_deleted_total",
		Help: "Posts deleted by their author.",
	})

	FeedCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bondeo_feed_cache_total",
		Help: "Home feed cache lookups, labelled hit or miss.",
	}, []string{"result"})
)
