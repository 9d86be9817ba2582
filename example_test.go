package hand_test

import (
	"github.com/nomoreqwerty/hand"
)

func ExampleInfoln() {
	hand.Infoln("downloading {} packages", 42)
	hand.Infoln("next check at {}", "10:00 AM")
}

func ExampleWait() {
	// Leave the line open, then finish it once the step completes.
	hand.Wait("Continuing in {} seconds ... ", 3)
	hand.Successln("continued")
}

func ExampleScopeErrorln() {
	hand.ScopeErrorln("critical", "Critical error: {}", "file not found")
}

func ExampleCustomln() {
	hand.Customln(hand.Mark("🔋"), "charging is done")
	hand.ScopeCustomln("www.download.com", hand.Mark("💾"), "file saved to {}", "./downloads")
}
