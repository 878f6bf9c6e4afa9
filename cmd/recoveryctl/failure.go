package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Goden-Gun/payment-recovery/pkg/classifier"
)

// failureFile is the on-disk description of a failure:
//
//	{"kind":"api","errors":[{"code":"invalid_card_number","description":"..."}]}
//	{"kind":"known","known_kind":"network","cancelled":true}
//	{"kind":"known","known_kind":"internal","internal_code":3}
//	{"kind":"unknown","message":"boom"}
type failureFile struct {
	Kind         string `json:"kind"`
	KnownKind    string `json:"known_kind"`
	Cancelled    bool   `json:"cancelled"`
	InternalCode *int   `json:"internal_code"`
	Message      string `json:"message"`
}

func readFailure(path string) (classifier.RawFailure, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = readAllStdin()
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read failure file: %w", err)
	}
	return parseFailure(data)
}

func parseFailure(data []byte) (classifier.RawFailure, error) {
	var f failureFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse failure: %w", err)
	}

	switch f.Kind {
	case "api":
		return classifier.DecodeAPIFailure(data)
	case "known":
		return parseKnown(f)
	case "unknown", "":
		if f.Message == "" {
			return classifier.UnknownFailure{}, nil
		}
		return classifier.UnknownFailure{Err: errors.New(f.Message)}, nil
	default:
		return nil, fmt.Errorf("unsupported failure kind %q", f.Kind)
	}
}

func parseKnown(f failureFile) (classifier.RawFailure, error) {
	kind, ok := classifier.ParseKnownKind(f.KnownKind)
	if !ok {
		return nil, fmt.Errorf("unsupported known_kind %q", f.KnownKind)
	}

	var cause error
	switch {
	case kind == classifier.KindInternal && f.InternalCode != nil:
		cause = &classifier.InternalCodeError{Code: classifier.InternalError(*f.InternalCode), Message: f.Message}
	case kind == classifier.KindNetwork && f.Cancelled:
		cause = context.Canceled
	case f.Message != "":
		cause = errors.New(f.Message)
	}
	return classifier.KnownFailure{Kind: kind, Err: cause}, nil
}
