package analytics

import "encoding/json"

// TopUser is one row of the top-engagement-accounts view. The JSON keys
// match the source column names of the external data contract.
type TopUser struct {
	Name       string `json:"Name"`
	Handle     string `json:"Handle"`
	Engagement int64  `json:"Interacciones y Audiencia"`
}

// MonthCount is one (month-bucket, label) observation of the
// sentiment-over-time series.
type MonthCount struct {
	YearMonth string `json:"YearMonth"`
	Sentiment string `json:"Sentimiento"`
	Count     int    `json:"Conteo"`
}

// WordCount is one (token, frequency) pair. It serializes as a two-element
// array because the view is an ordered sequence, not a mapping.
type WordCount struct {
	Word  string
	Count int
}

// MarshalJSON emits ["word", count]
func (w WordCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{w.Word, w.Count})
}

// Bundle is the aggregate payload. Each view is optional: a nil field means
// its required columns were absent and the key is omitted from the JSON;
// a non-nil empty view still serializes. The engagement totals are always
// present, absent columns contributing 0.
type Bundle struct {
	TopUsers             []TopUser
	SentimentMonth       []MonthCount
	SentimentCounts      map[string]int
	TotalRetweets        int64
	TotalLikes           int64
	TotalViews           int64
	TotalComments        int64
	PostMax              map[string]interface{}
	AccountTypeCounts    map[string]int64
	AccountTypeSentiment map[string]map[string]int
	TopWords             []WordCount
}

// MarshalJSON writes the bundle with the fixed external key names, keeping
// the present-only-if-computable contract for the gated views.
func (b *Bundle) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, 11)

	if b.TopUsers != nil {
		doc["top_users"] = b.TopUsers
	}
	if b.SentimentMonth != nil {
		doc["sentiment_month"] = b.SentimentMonth
	}
	if b.SentimentCounts != nil {
		doc["sentiment_counts"] = b.SentimentCounts
	}
	doc["total_retweets"] = b.TotalRetweets
	doc["total_likes"] = b.TotalLikes
	doc["total_views"] = b.TotalViews
	doc["total_comments"] = b.TotalComments
	if b.PostMax != nil {
		doc["post_max_interacciones"] = b.PostMax
	}
	if b.AccountTypeCounts != nil {
		doc["conteo_tipo_cuenta"] = b.AccountTypeCounts
	}
	if b.AccountTypeSentiment != nil {
		doc["sentimiento_tipo_cuenta"] = b.AccountTypeSentiment
	}
	if b.TopWords != nil {
		doc["top_words"] = b.TopWords
	}

	return json.Marshal(doc)
}
