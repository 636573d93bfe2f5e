package main

import "github.com/Isaloum/StepSyncAI-sub005/cmd/stepsync"

func main() {
	stepsync.Execute()
}
