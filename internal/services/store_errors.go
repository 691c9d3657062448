package services

import (
	apperrors "customer-records/internal/errors"
)

// recordStoreError counts caller-facing failures by entity and kind
func recordStoreError(metrics MetricsRecorderInterface, entity string, err error) {
	storeErr, ok := apperrors.AsStoreError(err)
	if !ok {
		return
	}
	metrics.IncrementCounter("store_error", map[string]string{
		"entity": entity,
		"kind":   string(storeErr.Kind),
	})
}

func entityTags(entity string) map[string]string {
	return map[string]string{"entity": entity}
}
