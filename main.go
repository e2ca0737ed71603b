package main

import (
	"log"

	"github.com/smanja344-droid/custom-tee-creator/cart"
	"github.com/smanja344-droid/custom-tee-creator/config"
	"github.com/smanja344-droid/custom-tee-creator/models"
	"github.com/smanja344-droid/custom-tee-creator/repository"
	"github.com/smanja344-droid/custom-tee-creator/session"
	"github.com/smanja344-droid/custom-tee-creator/store"
)

func main() {
	log.Println("✅ Starting storefront core...")

	cfg := config.Load()

	kv, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("❌ Failed to open store: %v", err)
	}
	defer kv.Close()

	if err := repository.Seed(kv); err != nil {
		log.Fatalf("❌ Failed to seed collections: %v", err)
	}

	users := repository.NewUsers(kv)
	products := repository.NewProducts(kv)
	carts := repository.NewCarts(kv)

	sess, err := session.New(kv, users)
	if err != nil {
		log.Fatalf("❌ Failed to restore session: %v", err)
	}

	active, err := cart.New(carts)
	if err != nil {
		log.Fatalf("❌ Failed to load cart: %v", err)
	}

	// Re-sync the cart whenever the identity changes.
	sess.Subscribe(func(p *models.Principal) {
		userID := ""
		if p != nil {
			userID = p.ID
		}
		if err := active.SetUser(userID); err != nil {
			log.Printf("❌ Failed to switch cart scope: %v", err)
		}
	})
	if err := active.SetUser(sess.UserID()); err != nil {
		log.Fatalf("❌ Failed to load cart for session: %v", err)
	}

	catalog, err := products.List()
	if err != nil {
		log.Fatalf("❌ Failed to load catalog: %v", err)
	}

	if p, ok := sess.Current(); ok {
		log.Printf("👤 Resumed session for %s (%s)", p.Name, p.Role)
	}
	log.Printf("🚀 Storefront ready: %d products, %d items in cart (db: %s)",
		len(catalog), active.TotalItems(), cfg.DBPath)
}
