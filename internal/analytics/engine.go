package analytics

import (
	"context"
	"log/slog"
	"sort"

	"sentapi/internal/dataset"
	"sentapi/internal/sentiment"
)

// topUserLimit caps the top-engagement-accounts view
const topUserLimit = 10

// invalidMonthBucket is the series bucket for rows whose Date did not parse
const invalidMonthBucket = "NaT"

// Engine computes the aggregate views over a typed, labeled table. Each view
// gates independently on the columns it needs; a missing column removes the
// view from the bundle, never fails the request. All counting and summation
// is exact integer arithmetic.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an aggregation engine
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger.With(slog.String("component", "analytics_engine"))}
}

// Aggregate computes every view whose required columns are present.
// labels must have one entry per table row.
func (e *Engine) Aggregate(ctx context.Context, table *dataset.TypedTable, labels []sentiment.Label) *Bundle {
	bundle := &Bundle{}

	bundle.TopUsers = e.topUsers(table)
	bundle.SentimentMonth = e.sentimentMonth(table, labels)
	bundle.SentimentCounts = e.sentimentCounts(labels)
	bundle.TotalRetweets = sumColumn(table, dataset.ColRetweets)
	bundle.TotalLikes = sumColumn(table, dataset.ColLikes)
	bundle.TotalViews = sumColumn(table, dataset.ColViews)
	bundle.TotalComments = sumColumn(table, dataset.ColComments)
	bundle.PostMax = e.postMax(table, labels)
	bundle.AccountTypeCounts, bundle.AccountTypeSentiment = e.accountTypes(table, labels)

	e.logger.DebugContext(ctx, "aggregation complete",
		slog.Int("rows", table.RowCount()),
		slog.Bool("top_users", bundle.TopUsers != nil),
		slog.Bool("sentiment_month", bundle.SentimentMonth != nil),
		slog.Bool("post_max", bundle.PostMax != nil))

	return bundle
}

// accountKey groups rows by account identity
type accountKey struct {
	name   string
	handle string
}

// topUsers groups by (Name, Handle), sums the engagement metric, and keeps
// the ten largest groups. Ties stay in first-encountered group order via the
// stable sort.
func (e *Engine) topUsers(table *dataset.TypedTable) []TopUser {
	names, okName := table.Texts(dataset.ColName)
	handles, okHandle := table.Texts(dataset.ColHandle)
	engagement, okMetric := table.Ints(dataset.ColEngagement)
	if !okName || !okHandle || !okMetric {
		return nil
	}

	sums := make(map[accountKey]int64)
	var order []accountKey
	for i := range names {
		key := accountKey{name: names[i], handle: handles[i]}
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += engagement[i]
	}

	sort.SliceStable(order, func(i, j int) bool {
		return sums[order[i]] > sums[order[j]]
	})

	if len(order) > topUserLimit {
		order = order[:topUserLimit]
	}

	top := make([]TopUser, len(order))
	for i, key := range order {
		top[i] = TopUser{Name: key.name, Handle: key.handle, Engagement: sums[key]}
	}
	return top
}

// sentimentMonth buckets rows by (year, month) of the Date column and counts
// per (bucket, label). Rows whose Date is blank or unparseable bucket under
// the literal "NaT" so every labeled row stays visible in the series; only
// observed combinations appear, with no zero-filling.
func (e *Engine) sentimentMonth(table *dataset.TypedTable, labels []sentiment.Label) []MonthCount {
	dates, ok := table.Times(dataset.ColDate)
	if !ok {
		return nil
	}

	type monthKey struct {
		bucket string
		label  string
	}
	counts := make(map[monthKey]int)
	for i, ts := range dates {
		bucket := invalidMonthBucket
		if ts.Valid {
			bucket = ts.Time.Format("2006-01")
		}
		counts[monthKey{bucket: bucket, label: string(labels[i])}]++
	}

	keys := make([]monthKey, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].bucket != keys[j].bucket {
			return keys[i].bucket < keys[j].bucket
		}
		return keys[i].label < keys[j].label
	})

	series := make([]MonthCount, len(keys))
	for i, key := range keys {
		series[i] = MonthCount{YearMonth: key.bucket, Sentiment: key.label, Count: counts[key]}
	}
	return series
}

// sentimentCounts counts rows per occurring label
func (e *Engine) sentimentCounts(labels []sentiment.Label) map[string]int {
	counts := make(map[string]int)
	for _, label := range labels {
		counts[string(label)]++
	}
	return counts
}

// sumColumn sums an integer column; an absent column contributes 0
func sumColumn(table *dataset.TypedTable, name string) int64 {
	values, ok := table.Ints(name)
	if !ok {
		return 0
	}
	var total int64
	for _, v := range values {
		total += v
	}
	return total
}

// postMaxFields is the fixed projection of the extremal post, in contract
// order
var postMaxFields = []string{
	dataset.ColName,
	dataset.ColHandle,
	dataset.ColRetweets,
	dataset.ColLikes,
	dataset.ColComments,
	dataset.ColViews,
	dataset.ColPostBody,
	dataset.ColTimestamp,
}

// postMax selects the row with the maximum engagement metric (first
// occurrence wins ties via the strict comparison) and projects the fixed
// field subset. The display timestamp reformats to day/month/year; invalid
// values surface as empty strings after the sanitizer pass.
func (e *Engine) postMax(table *dataset.TypedTable, labels []sentiment.Label) map[string]interface{} {
	engagement, ok := table.Ints(dataset.ColEngagement)
	if !ok || len(engagement) == 0 {
		return nil
	}

	maxIdx := 0
	for i, v := range engagement {
		if v > engagement[maxIdx] {
			maxIdx = i
		}
	}

	fields := make(map[string]interface{}, len(postMaxFields)+1)
	for _, name := range postMaxFields {
		value, present := table.Value(name, maxIdx)
		if !present {
			continue
		}
		if name == dataset.ColTimestamp {
			if ts, isTS := value.(dataset.Timestamp); isTS && ts.Valid {
				fields[name] = ts.Time.Format("02/01/2006")
			} else {
				fields[name] = value
			}
			continue
		}
		fields[name] = value
	}
	fields["Sentimiento"] = string(labels[maxIdx])

	return dataset.SanitizeFields(fields)
}

// accountTypes computes, for each present flag column, the raw sum and the
// per-sentiment row counts where the flag is positive. desconocido is
// excluded from the crosstab by design.
func (e *Engine) accountTypes(table *dataset.TypedTable, labels []sentiment.Label) (map[string]int64, map[string]map[string]int) {
	crosstabLabels := []sentiment.Label{
		sentiment.LabelPositive,
		sentiment.LabelNegative,
		sentiment.LabelNeutral,
	}

	counts := make(map[string]int64)
	crosstab := make(map[string]map[string]int)

	for _, flag := range dataset.FlagColumns() {
		values, ok := table.Ints(flag)
		if !ok {
			continue
		}

		var total int64
		perLabel := map[string]int{
			string(sentiment.LabelPositive): 0,
			string(sentiment.LabelNegative): 0,
			string(sentiment.LabelNeutral):  0,
		}
		for i, v := range values {
			total += v
			if v > 0 {
				for _, label := range crosstabLabels {
					if labels[i] == label {
						perLabel[string(label)]++
					}
				}
			}
		}

		counts[flag] = total
		crosstab[flag] = perLabel
	}

	return counts, crosstab
}
