package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"
)

// ElasticSearchHook ships log entries to an Elasticsearch index
type ElasticSearchHook struct {
	client    *elasticsearch.Client
	indexName string
	hostname  string
}

// NewElasticSearchHook creates new Elasticsearch hook
func NewElasticSearchHook(client *elasticsearch.Client, indexName string) *ElasticSearchHook {
	hostname, _ := os.Hostname()
	return &ElasticSearchHook{
		client:    client,
		indexName: indexName,
		hostname:  hostname,
	}
}

// Levels returns all log levels
func (h *ElasticSearchHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire sends log entry to Elasticsearch
func (h *ElasticSearchHook) Fire(entry *logrus.Entry) error {
	body, err := json.Marshal(h.prepareLogDocument(entry))
	if err != nil {
		return fmt.Errorf("failed to marshal log document: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := h.client.Index(
		h.currentIndexName(entry.Time),
		bytes.NewReader(body),
		h.client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("elasticsearch index error: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch index error: %s", res.Status())
	}
	return nil
}

// currentIndexName appends a daily suffix, e.g. dashboard-log-2024.01.31
func (h *ElasticSearchHook) currentIndexName(t time.Time) string {
	return fmt.Sprintf("%s-%s", h.indexName, t.Format("2006.01.02"))
}

// prepareLogDocument prepares the log document structure
func (h *ElasticSearchHook) prepareLogDocument(entry *logrus.Entry) map[string]any {
	doc := make(map[string]any, len(entry.Data)+5)

	for key, value := range entry.Data {
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		doc[key] = value
	}

	doc["@timestamp"] = entry.Time.Format(time.RFC3339)
	doc["timestamp"] = entry.Time.UnixMilli()
	doc["level"] = entry.Level.String()
	doc["message"] = entry.Message
	if h.hostname != "" {
		doc["hostname"] = h.hostname
	}

	return doc
}
