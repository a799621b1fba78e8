package shapes

import "fmt"

// Kind selects the renderer that paints a body.
type Kind uint8

const (
	KindCircle Kind = iota
	KindDot
	KindBanner
	KindBurst
	KindPill
	KindParallelogram
	KindVLabel
	KindQuarterPie
	KindThickRing
	KindTextBadge
	KindStar
	KindEye
	KindMartiniGlass
	KindOliveStick
	KindCameraFront
	KindExclamationMark
	KindSparkStar
	KindCloud
	KindBagel
	KindRibbon
	KindArch
	KindRectWithCircles
	KindCShape

	kindCount
)

var kindNames = [kindCount]string{
	KindCircle:          "circle",
	KindDot:             "dot",
	KindBanner:          "banner",
	KindBurst:           "burst",
	KindPill:            "pill",
	KindParallelogram:   "parallelogram",
	KindVLabel:          "vlabel",
	KindQuarterPie:      "quarterPie",
	KindThickRing:       "thickRing",
	KindTextBadge:       "textBadge",
	KindStar:            "star",
	KindEye:             "eye",
	KindMartiniGlass:    "martiniGlass",
	KindOliveStick:      "oliveStick",
	KindCameraFront:     "cameraFront",
	KindExclamationMark: "exclamationMark",
	KindSparkStar:       "sparkStar",
	KindCloud:           "cloud",
	KindBagel:           "bagel",
	KindRibbon:          "ribbon",
	KindArch:            "arch",
	KindRectWithCircles: "rectWithCircles",
	KindCShape:          "cShape",
}

// Kinds returns all known kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for kind := Kind(0); kind < kindCount; kind++ {
		kinds = append(kinds, kind)
	}

	return kinds
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}
