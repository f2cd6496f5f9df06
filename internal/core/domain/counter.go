package domain

// Counter names one numeric column that may be moved atomically. Only the
// values declared here reach SQL, so Table and Column are safe to format
// into statements.
type Counter struct {
	Entity string
	Table  string
	Column string
}

var (
	CampaignImpressions = Counter{"ad_campaign", "ad_campaigns", "impression_count"}
	CampaignClicks      = Counter{"ad_campaign", "ad_campaigns", "click_count"}
	AdSpaceImpressions  = Counter{"ad_space", "ad_spaces", "impression_count"}
	AdSpaceClicks       = Counter{"ad_space", "ad_spaces", "click_count"}
	AirdropViews        = Counter{"airdrop", "airdrops", "view_count"}
	AirdropUpvotes      = Counter{"airdrop", "airdrops", "upvotes_count"}
	PresaleViews        = Counter{"presale", "presales", "view_count"}
	PresaleUpvotes      = Counter{"presale", "presales", "upvotes_count"}
	ListingYesVotes     = Counter{"exchange_listing", "crypto_exchange_listings", "yes_votes"}
	ListingNoVotes      = Counter{"exchange_listing", "crypto_exchange_listings", "no_votes"}
	CommentReports      = Counter{"comment", "comments", "report_count"}
	ArticleViews        = Counter{"article", "articles", "view_count"}
	VideoViews          = Counter{"video", "videos", "view_count"}
)

// Counters lists every declared counter.
var Counters = []Counter{
	CampaignImpressions, CampaignClicks, AdSpaceImpressions, AdSpaceClicks,
	AirdropViews, AirdropUpvotes, PresaleViews, PresaleUpvotes,
	ListingYesVotes, ListingNoVotes, CommentReports, ArticleViews, VideoViews,
}

// Known reports whether c is one of the declared counters.
func (c Counter) Known() bool {
	for _, k := range Counters {
		if k == c {
			return true
		}
	}
	return false
}
