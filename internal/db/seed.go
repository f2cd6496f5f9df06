package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"coinpulse/internal/core/domain"
)

// Seed fills an empty database with demo content. It does nothing when ad
// spaces already exist.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var n int64
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM ad_spaces`).Scan(&n); err != nil {
		return fmt.Errorf("seed: count ad spaces: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now().UTC()
	r := rand.New(rand.NewSource(now.UnixNano()))
	for _, step := range []func(context.Context, pgx.Tx, time.Time, *rand.Rand) error{
		seedCampaigns, seedAirdrops, seedPresales, seedEvents, seedListings, seedArticles, seedVideos,
	} {
		if err = step(ctx, tx, now, r); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func seedCampaigns(ctx context.Context, tx pgx.Tx, now time.Time, r *rand.Rand) error {
	spaces := []struct {
		name, placement string
		w, h            int
	}{
		{"Header Leaderboard", "header", 728, 90},
		{"Sidebar Rectangle", "sidebar", 300, 250},
		{"In-Article Banner", "article", 468, 60},
	}
	for i, s := range spaces {
		var spaceID int64
		err := tx.QueryRow(ctx, `INSERT INTO ad_spaces (name, slug, placement, width, height)
VALUES ($1,$2,$3,$4,$5) RETURNING id`, s.name, domain.Slugify(s.name), s.placement, s.w, s.h).Scan(&spaceID)
		if err != nil {
			return err
		}
		impressions := int64(1000 + r.Intn(9000))
		clicks := int64(r.Intn(200))
		budget := decimal.NewFromInt(int64(500 * (i + 1)))
		_, err = tx.Exec(ctx, `INSERT INTO ad_campaigns
    (ad_space_id, name, advertiser_email, target_url, status, start_date, end_date, is_approved, approved_at,
     impression_count, click_count, ctr, budget, spent)
VALUES ($1,$2,$3,$4,'active',$5,$6,TRUE,$5,$7,$8,$9,$10,$11)`,
			spaceID, fmt.Sprintf("Campaign %d", i+1), fmt.Sprintf("ads%d@example.com", i+1),
			"https://example.com/promo", now.AddDate(0, 0, -7), now.AddDate(0, 1, 0),
			impressions, clicks, domain.CTR(clicks, impressions), budget, budget.Div(decimal.NewFromInt(3)).Round(2))
		if err != nil {
			return err
		}
	}
	return nil
}

func seedAirdrops(ctx context.Context, tx pgx.Tx, now time.Time, r *rand.Rand) error {
	rows := []struct {
		name, symbol, chain, status string
		start                       time.Time
		end                         *time.Time
	}{
		{"LayerZero Season 2", "ZRO", "Ethereum", domain.StatusOngoing, now.AddDate(0, 0, -3), ptr(now.AddDate(0, 0, 10))},
		{"Jupiter Jupuary", "JUP", "Solana", domain.StatusUpcoming, now.AddDate(0, 0, 5), ptr(now.AddDate(0, 1, 0))},
		{"Monad Testnet", "MON", "Monad", domain.StatusPotential, now.AddDate(0, 2, 0), nil},
	}
	supply := decimal.NewFromInt(1_000_000_000)
	for _, a := range rows {
		qty := decimal.NewFromInt(int64(100_000 + r.Intn(900_000)))
		_, err := tx.Exec(ctx, `INSERT INTO airdrops
    (name, slug, token_symbol, blockchain, status, start_date, end_date, airdrop_qty, total_supply)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			a.name, domain.Slugify(a.name), a.symbol, a.chain, a.status, a.start, a.end, qty, supply)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedPresales(ctx context.Context, tx pgx.Tx, now time.Time, _ *rand.Rand) error {
	rows := []struct {
		name, symbol, stage, status string
		start, end                  time.Time
		price                       *decimal.Decimal
	}{
		{"Bitcoin Hyper", "HYPER", "Stage 4", domain.StatusOngoing, now.AddDate(0, 0, -10), now.AddDate(0, 0, 20), ptr(decimal.RequireFromString("0.012675"))},
		{"Snorter Bot", "SNORT", "Stage 1", domain.StatusUpcoming, now.AddDate(0, 0, 2), now.AddDate(0, 2, 0), nil},
	}
	for _, p := range rows {
		_, err := tx.Exec(ctx, `INSERT INTO presales
    (name, slug, token_symbol, stage, status, start_date, end_date, price)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			p.name, domain.Slugify(p.name), p.symbol, p.stage, p.status, p.start, p.end, p.price)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedEvents(ctx context.Context, tx pgx.Tx, now time.Time, _ *rand.Rand) error {
	capacity := int64(150)
	_, err := tx.Exec(ctx, `INSERT INTO events
    (title, slug, location, is_online, status, start_date, end_date, max_participants)
VALUES ($1,$2,$3,FALSE,'upcoming',$4,$5,$6), ($7,$8,'',TRUE,'upcoming',$9,$10,NULL)`,
		"Token2049 Side Event", domain.Slugify("Token2049 Side Event"), "Singapore",
		now.AddDate(0, 0, 14), now.AddDate(0, 0, 15), capacity,
		"Weekly Market AMA", domain.Slugify("Weekly Market AMA"), now.AddDate(0, 0, 3), now.AddDate(0, 0, 3).Add(time.Hour))
	return err
}

func seedListings(ctx context.Context, tx pgx.Tx, now time.Time, r *rand.Rand) error {
	for _, l := range [][3]string{{"Binance", "Pepe", "PEPE"}, {"Coinbase", "Bonk", "BONK"}} {
		_, err := tx.Exec(ctx, `INSERT INTO crypto_exchange_listings
    (exchange_name, coin_name, coin_symbol, slug, is_published, published_at, yes_votes, no_votes)
VALUES ($1,$2,$3,$4,TRUE,$5,$6,$7)`,
			l[0], l[1], l[2], domain.Slugify(l[1]+" "+l[0]), now, r.Intn(500), r.Intn(500))
		if err != nil {
			return err
		}
	}
	return nil
}

func seedArticles(ctx context.Context, tx pgx.Tx, now time.Time, _ *rand.Rand) error {
	var articleID int64
	title := "Bitcoin ETF Flows Hit Record"
	err := tx.QueryRow(ctx, `INSERT INTO articles (title, slug, content_type, excerpt, body, author, published_at)
VALUES ($1,$2,'news',$3,$4,'Newsroom',$5) RETURNING id`,
		title, domain.Slugify(title), "Spot ETFs saw their largest inflow day.", "Full story.", now).Scan(&articleID)
	if err != nil {
		return err
	}
	for _, tag := range []string{"bitcoin", "etf"} {
		if _, err = tx.Exec(ctx, `WITH t AS (
    INSERT INTO tags (slug) VALUES ($1) ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug RETURNING id)
INSERT INTO article_tags (article_id, tag_id) SELECT $2, id FROM t`, tag, articleID); err != nil {
			return err
		}
	}
	// an approved demo comment under the article
	_, err = tx.Exec(ctx, `INSERT INTO comments (commentable_type, commentable_id, user_id, body, is_approved, approved_at)
VALUES ('article', $1, $2, 'Great write-up.', TRUE, $3)`, articleID, uuid.NewString(), now)
	return err
}

func seedVideos(ctx context.Context, tx pgx.Tx, _ time.Time, _ *rand.Rand) error {
	url := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	_, err := tx.Exec(ctx, `INSERT INTO videos (title, slug, youtube_url, youtube_id) VALUES ($1,$2,$3,$4)`,
		"Market Wrap", domain.Slugify("Market Wrap"), url, domain.YouTubeID(url))
	return err
}

func ptr[T any](v T) *T { return &v }
