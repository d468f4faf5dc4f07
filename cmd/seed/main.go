package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Nainee99/bondeo/configs"
	"github.com/Nainee99/bondeo/internal/follow"
	"github.com/Nainee99/bondeo/internal/identity"
	"github.com/Nainee99/bondeo/internal/migrate"
	"github.com/Nainee99/bondeo/internal/notification"
	"github.com/Nainee99/bondeo/internal/post"
	"github.com/Nainee99/bondeo/internal/shared/db"
	"github.com/Nainee99/bondeo/internal/user"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	numUsers        = 25
	postsPerUser    = 4
	followsPerUser  = 5
	likesPerUser    = 8
	commentsPerUser = 3
)

// Populates a dev database with fake users, posts, follows, likes and
// comments, going through the services so every invariant holds.
func main() {
	gofakeit.Seed(time.Now().UnixNano())

	cfg := configs.LoadConfig()
	store := db.Open(cfg.DSN())
	if err := migrate.AutoMigrateAll(store.DB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := user.NewRepository(store)
	idSvc := identity.NewService(userRepo)
	notifRepo := notification.NewRepository(store)
	followSvc := follow.NewService(follow.NewRepository(store, notifRepo))
	postSvc := post.NewService(post.NewRepository(store), nil, nil)

	ids := make([]uint64, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		external := fmt.Sprintf("seed_%s", gofakeit.UUID())
		uid, err := idSvc.ResolveOrCreate(external)
		if err != nil {
			log.Fatalf("resolve user: %v", err)
		}
		u, err := userRepo.FindByID(uid)
		if err != nil {
			log.Fatalf("load user: %v", err)
		}
		u.Name = gofakeit.Name()
		u.Bio = gofakeit.Sentence(8)
		u.Location = gofakeit.City()
		u.Website = gofakeit.URL()
		if err := userRepo.Update(u); err != nil {
			log.Fatalf("update user: %v", err)
		}
		ids = append(ids, uid)
	}
	log.Printf("seeded %d users", len(ids))

	var postIDs []uint64
	for _, uid := range ids {
		for i := 0; i < postsPerUser; i++ {
			p, err := postSvc.Create(ctx, uid, post.CreateReq{Content: gofakeit.Sentence(12)})
			if err != nil {
				log.Fatalf("create post: %v", err)
			}
			postIDs = append(postIDs, p.ID)
		}
	}
	log.Printf("seeded %d posts", len(postIDs))

	follows := 0
	for _, uid := range ids {
		for i := 0; i < followsPerUser; i++ {
			target := ids[gofakeit.Number(0, len(ids)-1)]
			if target == uid {
				continue
			}
			if _, err := followSvc.Toggle(uid, target); err != nil {
				log.Fatalf("toggle follow: %v", err)
			}
			follows++
		}
	}
	log.Printf("toggled %d follows", follows)

	for _, uid := range ids {
		for i := 0; i < likesPerUser; i++ {
			pid := postIDs[gofakeit.Number(0, len(postIDs)-1)]
			if _, _, err := postSvc.ToggleLike(ctx, uid, pid); err != nil {
				log.Fatalf("toggle like: %v", err)
			}
		}
		for i := 0; i < commentsPerUser; i++ {
			pid := postIDs[gofakeit.Number(0, len(postIDs)-1)]
			if _, err := postSvc.AddComment(ctx, uid, pid, gofakeit.Sentence(6)); err != nil {
				log.Fatalf("add comment: %v", err)
			}
		}
	}
	log.Println("seeding done")
}
