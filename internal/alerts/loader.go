package alerts

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
)

// ParseRules reads rules from a JSON document. Both a bare array and an
// object with a "rules" array are accepted. "enabled" defaults to true.
func ParseRules(data []byte) ([]models.AlertRule, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid rules document")
	}

	doc := gjson.ParseBytes(data)
	list := doc
	if doc.IsObject() {
		list = doc.Get("rules")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("rules document must contain an array of rules")
	}

	items := list.Array()
	rules := make([]models.AlertRule, 0, len(items))
	for i, item := range items {
		metric := item.Get("metric")
		if metric.String() == "" {
			return nil, fmt.Errorf("rule %d: missing metric", i)
		}

		enabled := true
		if e := item.Get("enabled"); e.Exists() {
			enabled = e.Bool()
		}

		rules = append(rules, models.AlertRule{
			MetricName:  metric.String(),
			Warning:     item.Get("warning").Float(),
			Critical:    item.Get("critical").Float(),
			Enabled:     enabled,
			Description: item.Get("description").String(),
		})
	}
	return rules, nil
}

func LoadRulesFile(path string) ([]models.AlertRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	rules, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", path, err)
	}
	return rules, nil
}
