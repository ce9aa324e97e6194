// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package engine drives the search and CSP packages for host programs.
//
// It selects a strategy from configuration, runs it, and reports every run
// through structured logs, OpenTelemetry spans and metrics. Compare runs
// several strategies against one problem concurrently.
//
// Example Usage:
//
//	config, err := engine.LoadConfig("symphony.yaml")
//	if err != nil {
//	    return err
//	}
//	e, err := engine.New(config, nil)
//	if err != nil {
//	    return err
//	}
//	report, err := engine.Solve(ctx, e, problem)
//	if err != nil {
//	    return err
//	}
//	if report.Found {
//	    fmt.Println(report.Solution.ActionNames())
//	}
package engine
