package domain

// NewsArticle Model: static read-only reference data, not user-owned
type NewsArticle struct {
	ID          uint   `json:"id"`          // Article id
	Title       string `json:"title"`       // Headline
	Source      string `json:"source"`      // Publication name
	Date        string `json:"date"`        // Publication date (YYYY-MM-DD)
	Snippet     string `json:"snippet"`     // Short teaser text
	FullContent string `json:"fullContent"` // Full article body
}

// NewsArticles returns the fixed list served by the news route.
func NewsArticles() []NewsArticle {
	return []NewsArticle{
		{
			ID:          1,
			Title:       "Bitcoin Hits New All-Time High!",
			Source:      "Crypto News Today",
			Date:        "2025-05-15",
			Snippet:     "Bitcoin (BTC) has surpassed previous records, reaching a new all-time high of...",
			FullContent: "Detailed content about Bitcoin hitting new all-time high...",
		},
		{
			ID:          2,
			Title:       "Understanding DeFi: A Beginner's Guide",
			Source:      "Learn Crypto",
			Date:        "2025-05-14",
			Snippet:     "Decentralized Finance (DeFi) is transforming the financial landscape. This guide explains...",
			FullContent: "A comprehensive guide to understanding DeFi concepts...",
		},
	}
}
