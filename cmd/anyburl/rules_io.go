package main

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/anyburl-go/anyburl/rule"
)

func writeRulesJSONL(path string, rules map[string]*rule.GeneralizedRule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	enc := json.NewEncoder(w)
	for _, r := range rules {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func readRulesJSONL(path string) (map[string]*rule.GeneralizedRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rules := make(map[string]*rule.GeneralizedRule)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r rule.GeneralizedRule
		if err := json.Unmarshal(line, &r); err != nil {
			return nil, err
		}
		rules[r.String()] = &r
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}
