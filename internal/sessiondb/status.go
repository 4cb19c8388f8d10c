package sessiondb

import (
	"fmt"

	"github.com/fweigt/tslabel/schema"
)

// PrintSessionStatus prints session store status information.
func PrintSessionStatus(status schema.SessionStatus) {
	fmt.Printf("Session Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	if status.DBPath != "" {
		fmt.Printf("Database: %s\n", status.DBPath)
	}
	fmt.Printf("Sessions: %d\n", status.Sessions)
	fmt.Printf("Total Assignments: %d\n", status.TotalAssignments)
}
