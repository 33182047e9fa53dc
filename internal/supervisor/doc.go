// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

/*
Package supervisor runs the service's long-lived components under suture v4.

	RootSupervisor ("lookbook")
	├── DataSupervisor ("data-layer")
	│   └── CatalogMonitor
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff; a failure in one layer does
not restart the other. Supervisor events are logged through sutureslog,
bridged to zerolog by logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewCatalogMonitor(store, engine, time.Minute, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, 10*time.Second, logger))
	err = tree.Serve(ctx) // blocks until ctx is canceled
*/
package supervisor
