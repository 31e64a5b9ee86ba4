package googleads

import "fmt"

// Consultas GAQL de cada categoria de relatório. Todas as séries diárias vêm
// ordenadas por data ascendente, que é a ordem esperada pela reconciliação de
// períodos

func campaignMetricsQuery(startDate, endDate string, activeOnly bool) string {
	return fmt.Sprintf(`
		SELECT
			campaign.id,
			campaign.name,
			campaign.status,
			ad_group.name,
			metrics.impressions,
			metrics.clicks,
			metrics.cost_micros,
			metrics.conversions,
			metrics.ctr,
			metrics.average_cpc,
			metrics.cost_per_conversion,
			segments.date,
			segments.day_of_week
		FROM ad_group
		WHERE segments.date BETWEEN '%s' AND '%s'%s
		ORDER BY segments.date ASC, metrics.conversions DESC`,
		startDate, endDate, activeOnlyPredicate(activeOnly),
	)
}

func perDayMetricsQuery(startDate, endDate string) string {
	return fmt.Sprintf(`
		SELECT
			segments.date,
			segments.hour,
			metrics.impressions,
			metrics.clicks,
			metrics.conversions,
			metrics.cost_micros
		FROM customer
		WHERE segments.date BETWEEN '%s' AND '%s'
		ORDER BY segments.date ASC`,
		startDate, endDate,
	)
}

func keywordMetricsQuery(startDate, endDate string, activeOnly bool) string {
	return fmt.Sprintf(`
		SELECT
			campaign.name,
			ad_group.name,
			ad_group_criterion.keyword.text,
			ad_group_criterion.keyword.match_type,
			metrics.impressions,
			metrics.clicks,
			metrics.cost_micros,
			metrics.average_cpc,
			metrics.conversions,
			metrics.conversions_from_interactions_rate,
			segments.date,
			segments.day_of_week
		FROM keyword_view
		WHERE segments.date BETWEEN '%s' AND '%s'%s
		ORDER BY segments.date ASC, metrics.conversions DESC`,
		startDate, endDate, activeOnlyPredicate(activeOnly),
	)
}

func adCreativeMetricsQuery(startDate, endDate string) string {
	return fmt.Sprintf(`
		SELECT
			campaign.name,
			ad_group_ad.ad.name,
			ad_group_ad.ad.responsive_search_ad.headlines,
			ad_group_ad.ad.responsive_search_ad.descriptions,
			metrics.clicks,
			metrics.impressions,
			metrics.conversions,
			segments.date
		FROM ad_group_ad
		WHERE segments.date BETWEEN '%s' AND '%s'
		ORDER BY segments.date ASC, metrics.conversions DESC`,
		startDate, endDate,
	)
}

func accountMetricsQuery(startDate, endDate string) string {
	return fmt.Sprintf(`
		SELECT
			customer.id,
			customer.descriptive_name,
			metrics.impressions,
			metrics.clicks,
			metrics.cost_micros,
			metrics.conversions,
			metrics.ctr,
			metrics.average_cpc,
			metrics.cost_per_conversion
		FROM customer
		WHERE segments.date BETWEEN '%s' AND '%s'`,
		startDate, endDate,
	)
}

func managerAccountQuery() string {
	return `
		SELECT
			customer.id,
			customer.descriptive_name,
			customer.currency_code,
			customer.time_zone,
			customer.test_account,
			customer.status,
			customer.manager,
			customer.auto_tagging_enabled,
			customer.tracking_url_template,
			customer.final_url_suffix,
			customer.conversion_tracking_setting.conversion_tracking_id,
			customer.conversion_tracking_setting.conversion_tracking_status
		FROM customer`
}

func activeOnlyPredicate(activeOnly bool) string {
	if !activeOnly {
		return ""
	}

	return " AND metrics.impressions > '0'"
}
