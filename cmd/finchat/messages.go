package main

import "finchat/chat"

// actionDoneMsg is sent when an action dispatch completes
type actionDoneMsg struct {
	Gen  uint64
	Turn chat.Turn
}

// startStreamMsg begins the simulated token reveal of a generated
// reply after the short thinking pause
type startStreamMsg struct {
	Reply string
}

// streamTickMsg advances the simulated token reveal
type streamTickMsg struct{}

// hintTickMsg rotates the spinner hint while thinking
type hintTickMsg struct{}
