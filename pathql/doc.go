// Package pathql is the query engine's root facade: thin wrappers around
// rpq, bfsquery, and cfpq that add structured lifecycle logging so a
// caller gets one import and one log stream regardless of which query
// kind it runs.
//
// AI-HINT: grounded on this module's root doc.go for narrative style;
// logging is grounded on projectdiscovery-alterx's gologger usage, since
// neither this module's teacher nor the query engine itself carries a
// logging dependency of its own.
package pathql
