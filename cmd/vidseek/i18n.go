// Package main provides localization for the vidseek CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Find the video frame recorded at a given wall-clock instant.": "指定した実時刻に記録された動画フレームを探します。",

		// Subcommands
		"List the videos in a directory with their timing metadata.": "ディレクトリ内の動画と時刻メタデータを一覧表示",
		"Locate the frame recorded at a wall-clock instant.":         "実時刻に記録されたフレームを特定",
		"Show version information.":                                  "バージョン情報を表示",

		// Common flags
		"Directory containing video files.":                                     "動画ファイルを含むディレクトリ",
		"Treat metadata timestamps as end-of-recording and subtract the duration.": "メタデータの時刻を録画終了時刻とみなし、再生時間を差し引く",
		"Recognized video extensions (default: .mp4 .avi .mov .mkv .flv .wmv).":  "認識する動画の拡張子（デフォルト: .mp4 .avi .mov .mkv .flv .wmv）",
		"Which recording wins when several contain the target instant.":          "複数の録画が対象時刻を含む場合にどれを優先するか",
		"Cache scanned metadata in a JSON file and reuse it on later runs.":      "スキャンしたメタデータをJSONファイルにキャッシュし、次回以降に再利用",
		"Ignore and rewrite the metadata cache.":                                 "メタデータキャッシュを無視して書き直す",
		"YAML configuration file path.":                                          "YAML設定ファイルのパス",
		"Log level (debug, info, warn, error).":                                  "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":                                               "全てのログ出力を抑制",

		// Seek flags
		"Target datetime (format: YYYY-MM-DD HH:MM:SS, local time).":        "対象日時（形式: YYYY-MM-DD HH:MM:SS、ローカル時刻）",
		"Frame offset applied after resolution; may be negative.":           "解決後に適用するフレームオフセット（負の値も可）",
		"Save the found frame as PNG to this path.":                         "見つかったフレームをPNGとしてこのパスに保存",
		"Display the found frame in a window.":                              "見つかったフレームをウィンドウに表示",
		"Burn the target instant and frame index into the output frame.":    "対象時刻とフレーム番号を出力フレームに焼き込む",
		"Show execution times for each step.":                               "各ステップの実行時間を表示",
		"Also write catalog/resolution artifacts to this directory.":        "カタログと解決結果の成果物もこのディレクトリに書き出す",

		// Runtime messages
		"Searching %s for the frame recorded at %s...": "%s から %s に記録されたフレームを検索中...",
		"Resolved to frame %d of %s (%s match)":        "%s のフレーム %d に解決しました (%s マッチ)",
		"No videos with usable metadata in %s":         "%s に利用可能なメタデータを持つ動画がありません",
		"Interrupted, shutting down...":                "中断されました。シャットダウン中...",

		// Version command
		"vidseek version %s": "vidseek バージョン %s",
	})
}
