// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

/*
Package metrics provides Prometheus instrumentation for Lookbook.

All collectors are registered on the default registry through promauto and
exposed by the API at /metrics:

	curl http://localhost:8000/metrics

Feature store:
  - featurestore_query_duration_seconds{operation}
  - featurestore_query_errors_total{operation}
  - featurestore_table_present{table}

Ranker:
  - ranker_score_duration_seconds
  - ranker_vectors_scored_total

Pipeline:
  - recommend_requests_total{path,outcome}
  - recommend_duration_seconds{path}
  - recommend_candidates
  - recommend_unmapped_items_total

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}

Example PromQL, cold-start share over five minutes:

	sum(rate(recommend_requests_total{path="cold_start"}[5m]))
	  / sum(rate(recommend_requests_total[5m]))
*/
package metrics
