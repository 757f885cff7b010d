// Package main provides localization for the chronocam CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Timelapse security camera: saves a timestamped JPEG every few seconds.": "タイムラプス防犯カメラ: 数秒ごとに撮影時刻入りのJPEGを保存します。",

		// Version command
		"chronocam version %s": "chronocam バージョン %s",

		// Runtime messages
		"Summary saved to %s":         "サマリーを %s に保存しました",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		// Summary content
		"Capture Summary":      "撮影サマリー",
		"Settings":             "設定",
		"Frames":               "フレーム",
		"Result":               "結果",
		"Item":                 "項目",
		"Value":                "値",
		"Session ID":           "セッションID",
		"Started":              "開始日時",
		"Ended":                "終了日時",
		"Duration":             "撮影時間",
		"Device":               "デバイス",
		"Driver":               "ドライバー",
		"Interval":             "撮影間隔",
		"Output Directory":     "出力ディレクトリ",
		"Frames Read":          "読み込みフレーム数",
		"Warm-up Discarded":    "ウォームアップ破棄数",
		"Empty Frames Dropped": "空フレーム破棄数",
		"Frames Archived":      "保存フレーム数",
		"Archived Size":        "保存サイズ",
		"First File":           "最初のファイル",
		"Last File":            "最後のファイル",
		"None":                 "なし",
		"Completed":            "正常に終了しました",
		"Stopped with error":   "エラーで停止しました",
		"Generated by":         "生成:",
	})
}
